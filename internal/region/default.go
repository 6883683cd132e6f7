package region

// Region names, in lookup order.
const (
	Africa      = "Africa"
	AsiaOceania = "Asia & Oceania"
	Europe      = "Europe"
	Americas    = "Americas"
	Sport       = "Sport"
)

// KSA, KUW, UAR and LBN are deliberately listed under Africa.
func defaultEntries() []Entry {
	return []Entry{
		{
			Name: Africa,
			Members: []string{
				"ALG", "BOT", "BUR", "BDI", "CIV", "CMR", "COD", "COM", "CPV", "DJI", "EGY", "ERI",
				"ETH", "GAB", "GHA", "GIN", "GMB", "GUI", "KEN", "LES", "LBR", "LBY", "MAD",
				"MLI", "MLW", "MOZ", "MRI", "NAM", "NIG", "NGR", "RWA", "SEN", "SEY", "SLE",
				"SOM", "STP", "SUD", "SWZ", "TAN", "TOG", "TUN", "UGA", "ZAM", "ZIM", "LBN",
				"KSA", "UAR", "MAR", "KUW", "RSA",
			},
		},
		{
			Name: AsiaOceania,
			Members: []string{
				"AFG", "AUS", "BRN", "BAN", "BHU", "CAM", "CHN", "FIJ", "GUM", "HKG", "INA",
				"IND", "IRI", "IRQ", "ISR", "JPN", "JOR", "KAZ", "KOR", "KGZ", "LAO", "LIB",
				"MAS", "MDV", "MGL", "MYA", "NEP", "NZL", "OMA", "PAK", "PHI", "PLE", "QAT", "ROC",
				"SAM", "SIN", "SRI", "SYR", "THA", "TKM", "TJK", "TLS", "TGA", "UAE", "UZB", "URS",
				"VIE", "YEM", "ANZ", "SGP", "PRK", "TPE",
			},
		},
		{
			Name: Europe,
			Members: []string{
				"ALB", "AND", "ARM", "AUT", "AZE", "BEL", "BIH", "BLR", "BOH", "BUL", "CRO", "CYP",
				"CZE", "DEN", "ESP", "EST", "FIN", "FRA", "GEO", "GER", "GDR", "GRE", "HUN", "ISL",
				"IRL", "ITA", "KOS", "LAT", "LIE", "LTU", "LUX", "MDA", "MKD", "MLT", "MNE",
				"MON", "NED", "NOR", "POL", "POR", "ROU", "RUS", "SMR", "SRB", "SVK", "SVN",
				"SWE", "SUI", "TUR", "UKR", "GBR", "YUG", "FRG", "SCG", "TCH", "SLO",
			},
		},
		{
			Name: Americas,
			Members: []string{
				"ANT", "ARG", "ARU", "BAH", "BAR", "BER", "BIZ", "BOL", "BRA", "CAN", "CHI",
				"COL", "CRC", "CUB", "DMA", "DOM", "ECU", "ESA", "GRN", "GUA", "GUY", "HAI",
				"HON", "ISV", "JAM", "MEX", "NCA", "PAN", "PAR", "PER", "PUR", "SKN", "LCA",
				"SUR", "TTO", "USA", "URU", "VEN", "WIF", "AHO",
			},
		},
		{
			Name: Sport,
			Members: []string{
				"shooting", "fighting", "cycling", "swimming", "gymnastics", "athletics",
				"equestrian", "boating", "other", "racquets", "teams",
			},
		},
	}
}
