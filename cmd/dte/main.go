// Comando dte: herramientas de operación del motor de facturación
// (migraciones, JSON Schema, armado fuera de línea y catálogos).
package main

import (
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	Execute()
}
