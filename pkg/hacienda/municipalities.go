package hacienda

// department agrupa el nombre y los municipios de un departamento.
// El código del municipio es su posición en la lista (base 1, dos dígitos).
type department struct {
	name           string
	municipalities []string
}

// departments CAT-012/CAT-013 (división territorial vigente antes de 2024).
var departments = map[string]department{
	"01": {"Ahuachapán", []string{
		"Ahuachapán", "Apaneca", "Atiquizaya", "Concepción de Ataco", "El Refugio", "Guaymango",
		"Jujutla", "San Francisco Menéndez", "San Lorenzo", "San Pedro Puxtla", "Tacuba", "Turín",
	}},
	"02": {"Santa Ana", []string{
		"Candelaria de la Frontera", "Coatepeque", "Chalchuapa", "El Congo", "El Porvenir", "Masahuat",
		"Metapán", "San Antonio Pajonal", "San Sebastián Salitrillo", "Santa Ana", "Santa Rosa Guachipilín",
		"Santiago de la Frontera", "Texistepeque",
	}},
	"03": {"Sonsonate", []string{
		"Acajutla", "Armenia", "Caluco", "Cuisnahuat", "Santa Isabel Ishuatán", "Izalco", "Juayúa",
		"Nahuizalco", "Nahulingo", "Salcoatitán", "San Antonio del Monte", "San Julián",
		"Santa Catarina Masahuat", "Santo Domingo de Guzmán", "Sonsonate", "Sonzacate",
	}},
	"04": {"Chalatenango", []string{
		"Agua Caliente", "Arcatao", "Azacualpa", "Citalá", "Comalapa", "Concepción Quezaltepeque",
		"Chalatenango", "Dulce Nombre de María", "El Carrizal", "El Paraíso", "La Laguna", "La Palma",
		"La Reina", "Las Vueltas", "Nombre de Jesús", "Nueva Concepción", "Nueva Trinidad", "Ojos de Agua",
		"Potonico", "San Antonio de la Cruz", "San Antonio Los Ranchos", "San Fernando", "San Francisco Lempa",
		"San Francisco Morazán", "San Ignacio", "San Isidro Labrador", "San José Cancasque",
		"San José Las Flores", "San Luis del Carmen", "San Miguel de Mercedes", "San Rafael", "Santa Rita",
		"Tejutla",
	}},
	"05": {"La Libertad", []string{
		"Antiguo Cuscatlán", "Chiltiupán", "Ciudad Arce", "Colón", "Comasagua", "Huizúcar", "Jayaque",
		"Jicalapa", "La Libertad", "Santa Tecla", "Nuevo Cuscatlán", "San Juan Opico", "Quezaltepeque",
		"Sacacoyo", "San José Villanueva", "San Matías", "San Pablo Tacachico", "Talnique", "Tamanique",
		"Teotepeque", "Tepecoyo", "Zaragoza",
	}},
	"06": {"San Salvador", []string{
		"Aguilares", "Apopa", "Ayutuxtepeque", "Cuscatancingo", "El Paisnal", "Guazapa", "Ilopango",
		"Mejicanos", "Nejapa", "Panchimalco", "Rosario de Mora", "San Marcos", "San Martín", "San Salvador",
		"Santiago Texacuangos", "Santo Tomás", "Soyapango", "Tonacatepeque", "Ciudad Delgado",
	}},
	"07": {"Cuscatlán", []string{
		"Candelaria", "Cojutepeque", "El Carmen", "El Rosario", "Monte San Juan", "Oratorio de Concepción",
		"San Bartolomé Perulapía", "San Cristóbal", "San José Guayabal", "San Pedro Perulapán",
		"San Rafael Cedros", "San Ramón", "Santa Cruz Analquito", "Santa Cruz Michapa", "Suchitoto",
		"Tenancingo",
	}},
	"08": {"La Paz", []string{
		"Cuyultitán", "El Rosario", "Jerusalén", "Mercedes La Ceiba", "Olocuilta", "Paraíso de Osorio",
		"San Antonio Masahuat", "San Emigdio", "San Francisco Chinameca", "San Juan Nonualco",
		"San Juan Talpa", "San Juan Tepezontes", "San Luis Talpa", "San Luis La Herradura",
		"San Miguel Tepezontes", "San Pedro Masahuat", "San Pedro Nonualco", "San Rafael Obrajuelo",
		"Santa María Ostuma", "Santiago Nonualco", "Tapalhuaca", "Zacatecoluca",
	}},
	"09": {"Cabañas", []string{
		"Cinquera", "Dolores", "Guacotecti", "Ilobasco", "Jutiapa", "San Isidro", "Sensuntepeque",
		"Tejutepeque", "Victoria",
	}},
	"10": {"San Vicente", []string{
		"Apastepeque", "Guadalupe", "San Cayetano Istepeque", "San Esteban Catarina", "San Ildefonso",
		"San Lorenzo", "San Sebastián", "San Vicente", "Santa Clara", "Santo Domingo", "Tecoluca",
		"Tepetitán", "Verapaz",
	}},
	"11": {"Usulután", []string{
		"Alegría", "Berlín", "California", "Concepción Batres", "El Triunfo", "Ereguayquín", "Estanzuelas",
		"Jiquilisco", "Jucuapa", "Jucuarán", "Mercedes Umaña", "Nueva Granada", "Ozatlán",
		"Puerto El Triunfo", "San Agustín", "San Buenaventura", "San Dionisio", "San Francisco Javier",
		"Santa Elena", "Santa María", "Santiago de María", "Tecapán", "Usulután",
	}},
	"12": {"San Miguel", []string{
		"Carolina", "Chapeltique", "Chinameca", "Chirilagua", "Ciudad Barrios", "Comacarán", "El Tránsito",
		"Lolotique", "Moncagua", "Nueva Guadalupe", "Nuevo Edén de San Juan", "Quelepa",
		"San Antonio del Mosco", "San Gerardo", "San Jorge", "San Luis de la Reina", "San Miguel",
		"San Rafael Oriente", "Sesori", "Uluazapa",
	}},
	"13": {"Morazán", []string{
		"Arambala", "Cacaopera", "Chilanga", "Corinto", "Delicias de Concepción", "El Divisadero",
		"El Rosario", "Gualococti", "Guatajiagua", "Joateca", "Jocoaitique", "Jocoro", "Lolotiquillo",
		"Meanguera", "Osicala", "Perquín", "San Carlos", "San Fernando", "San Francisco Gotera",
		"San Isidro", "San Simón", "Sensembra", "Sociedad", "Torola", "Yamabal", "Yoloaiquín",
	}},
	"14": {"La Unión", []string{
		"Anamorós", "Bolívar", "Concepción de Oriente", "Conchagua", "El Carmen", "El Sauce", "Intipucá",
		"La Unión", "Lislique", "Meanguera del Golfo", "Nueva Esparta", "Pasaquina", "Polorós", "San Alejo",
		"San José", "Santa Rosa de Lima", "Yayantique", "Yucuaiquín",
	}},
}
