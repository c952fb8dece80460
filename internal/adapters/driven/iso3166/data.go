package iso3166

import "github.com/custodia-labs/iso4217/internal/core/domain"

// countries is the ISO 3166-1 table. Identifiers are the accent-stripped
// pascal case of the short name and must match the country rename table.
var countries = []domain.Country{
	{Identifier: "Afghanistan", Name: "Afghanistan", Numeric: 4, Alpha2: "AF", Alpha3: "AFG"},
	{Identifier: "AlandIslands", Name: "Åland Islands", Numeric: 248, Alpha2: "AX", Alpha3: "ALA"},
	{Identifier: "Albania", Name: "Albania", Numeric: 8, Alpha2: "AL", Alpha3: "ALB"},
	{Identifier: "Algeria", Name: "Algeria", Numeric: 12, Alpha2: "DZ", Alpha3: "DZA"},
	{Identifier: "AmericanSamoa", Name: "American Samoa", Numeric: 16, Alpha2: "AS", Alpha3: "ASM"},
	{Identifier: "Andorra", Name: "Andorra", Numeric: 20, Alpha2: "AD", Alpha3: "AND"},
	{Identifier: "Angola", Name: "Angola", Numeric: 24, Alpha2: "AO", Alpha3: "AGO"},
	{Identifier: "Anguilla", Name: "Anguilla", Numeric: 660, Alpha2: "AI", Alpha3: "AIA"},
	{Identifier: "Antarctica", Name: "Antarctica", Numeric: 10, Alpha2: "AQ", Alpha3: "ATA"},
	{Identifier: "AntiguaAndBarbuda", Name: "Antigua and Barbuda", Numeric: 28, Alpha2: "AG", Alpha3: "ATG"},
	{Identifier: "Argentina", Name: "Argentina", Numeric: 32, Alpha2: "AR", Alpha3: "ARG"},
	{Identifier: "Armenia", Name: "Armenia", Numeric: 51, Alpha2: "AM", Alpha3: "ARM"},
	{Identifier: "Aruba", Name: "Aruba", Numeric: 533, Alpha2: "AW", Alpha3: "ABW"},
	{Identifier: "Australia", Name: "Australia", Numeric: 36, Alpha2: "AU", Alpha3: "AUS"},
	{Identifier: "Austria", Name: "Austria", Numeric: 40, Alpha2: "AT", Alpha3: "AUT"},
	{Identifier: "Azerbaijan", Name: "Azerbaijan", Numeric: 31, Alpha2: "AZ", Alpha3: "AZE"},
	{Identifier: "Bahamas", Name: "Bahamas", Numeric: 44, Alpha2: "BS", Alpha3: "BHS"},
	{Identifier: "Bahrain", Name: "Bahrain", Numeric: 48, Alpha2: "BH", Alpha3: "BHR"},
	{Identifier: "Bangladesh", Name: "Bangladesh", Numeric: 50, Alpha2: "BD", Alpha3: "BGD"},
	{Identifier: "Barbados", Name: "Barbados", Numeric: 52, Alpha2: "BB", Alpha3: "BRB"},
	{Identifier: "Belarus", Name: "Belarus", Numeric: 112, Alpha2: "BY", Alpha3: "BLR"},
	{Identifier: "Belgium", Name: "Belgium", Numeric: 56, Alpha2: "BE", Alpha3: "BEL"},
	{Identifier: "Belize", Name: "Belize", Numeric: 84, Alpha2: "BZ", Alpha3: "BLZ"},
	{Identifier: "Benin", Name: "Benin", Numeric: 204, Alpha2: "BJ", Alpha3: "BEN"},
	{Identifier: "Bermuda", Name: "Bermuda", Numeric: 60, Alpha2: "BM", Alpha3: "BMU"},
	{Identifier: "Bhutan", Name: "Bhutan", Numeric: 64, Alpha2: "BT", Alpha3: "BTN"},
	{Identifier: "Bolivia", Name: "Bolivia", Numeric: 68, Alpha2: "BO", Alpha3: "BOL"},
	{Identifier: "BonaireSintEustatiusAndSaba", Name: "Bonaire, Sint Eustatius and Saba", Numeric: 535, Alpha2: "BQ", Alpha3: "BES"},
	{Identifier: "BosniaAndHerzegovina", Name: "Bosnia and Herzegovina", Numeric: 70, Alpha2: "BA", Alpha3: "BIH"},
	{Identifier: "Botswana", Name: "Botswana", Numeric: 72, Alpha2: "BW", Alpha3: "BWA"},
	{Identifier: "BouvetIsland", Name: "Bouvet Island", Numeric: 74, Alpha2: "BV", Alpha3: "BVT"},
	{Identifier: "Brazil", Name: "Brazil", Numeric: 76, Alpha2: "BR", Alpha3: "BRA"},
	{Identifier: "BritishIndianOceanTerritory", Name: "British Indian Ocean Territory", Numeric: 86, Alpha2: "IO", Alpha3: "IOT"},
	{Identifier: "BruneiDarussalam", Name: "Brunei Darussalam", Numeric: 96, Alpha2: "BN", Alpha3: "BRN"},
	{Identifier: "Bulgaria", Name: "Bulgaria", Numeric: 100, Alpha2: "BG", Alpha3: "BGR"},
	{Identifier: "BurkinaFaso", Name: "Burkina Faso", Numeric: 854, Alpha2: "BF", Alpha3: "BFA"},
	{Identifier: "Burundi", Name: "Burundi", Numeric: 108, Alpha2: "BI", Alpha3: "BDI"},
	{Identifier: "CaboVerde", Name: "Cabo Verde", Numeric: 132, Alpha2: "CV", Alpha3: "CPV"},
	{Identifier: "Cambodia", Name: "Cambodia", Numeric: 116, Alpha2: "KH", Alpha3: "KHM"},
	{Identifier: "Cameroon", Name: "Cameroon", Numeric: 120, Alpha2: "CM", Alpha3: "CMR"},
	{Identifier: "Canada", Name: "Canada", Numeric: 124, Alpha2: "CA", Alpha3: "CAN"},
	{Identifier: "CaymanIslands", Name: "Cayman Islands", Numeric: 136, Alpha2: "KY", Alpha3: "CYM"},
	{Identifier: "CentralAfricanRepublic", Name: "Central African Republic", Numeric: 140, Alpha2: "CF", Alpha3: "CAF"},
	{Identifier: "Chad", Name: "Chad", Numeric: 148, Alpha2: "TD", Alpha3: "TCD"},
	{Identifier: "Chile", Name: "Chile", Numeric: 152, Alpha2: "CL", Alpha3: "CHL"},
	{Identifier: "China", Name: "China", Numeric: 156, Alpha2: "CN", Alpha3: "CHN"},
	{Identifier: "ChristmasIsland", Name: "Christmas Island", Numeric: 162, Alpha2: "CX", Alpha3: "CXR"},
	{Identifier: "CocosKeelingIslands", Name: "Cocos (Keeling) Islands", Numeric: 166, Alpha2: "CC", Alpha3: "CCK"},
	{Identifier: "Colombia", Name: "Colombia", Numeric: 170, Alpha2: "CO", Alpha3: "COL"},
	{Identifier: "Comoros", Name: "Comoros", Numeric: 174, Alpha2: "KM", Alpha3: "COM"},
	{Identifier: "DemocraticRepublicOfTheCongo", Name: "Democratic Republic of the Congo", Numeric: 180, Alpha2: "CD", Alpha3: "COD"},
	{Identifier: "Congo", Name: "Congo", Numeric: 178, Alpha2: "CG", Alpha3: "COG"},
	{Identifier: "CookIslands", Name: "Cook Islands", Numeric: 184, Alpha2: "CK", Alpha3: "COK"},
	{Identifier: "CostaRica", Name: "Costa Rica", Numeric: 188, Alpha2: "CR", Alpha3: "CRI"},
	{Identifier: "CoteDIvoire", Name: "Côte d'Ivoire", Numeric: 384, Alpha2: "CI", Alpha3: "CIV"},
	{Identifier: "Croatia", Name: "Croatia", Numeric: 191, Alpha2: "HR", Alpha3: "HRV"},
	{Identifier: "Cuba", Name: "Cuba", Numeric: 192, Alpha2: "CU", Alpha3: "CUB"},
	{Identifier: "Curacao", Name: "Curaçao", Numeric: 531, Alpha2: "CW", Alpha3: "CUW"},
	{Identifier: "Cyprus", Name: "Cyprus", Numeric: 196, Alpha2: "CY", Alpha3: "CYP"},
	{Identifier: "Czechia", Name: "Czechia", Numeric: 203, Alpha2: "CZ", Alpha3: "CZE"},
	{Identifier: "Denmark", Name: "Denmark", Numeric: 208, Alpha2: "DK", Alpha3: "DNK"},
	{Identifier: "Djibouti", Name: "Djibouti", Numeric: 262, Alpha2: "DJ", Alpha3: "DJI"},
	{Identifier: "Dominica", Name: "Dominica", Numeric: 212, Alpha2: "DM", Alpha3: "DMA"},
	{Identifier: "DominicanRepublic", Name: "Dominican Republic", Numeric: 214, Alpha2: "DO", Alpha3: "DOM"},
	{Identifier: "Ecuador", Name: "Ecuador", Numeric: 218, Alpha2: "EC", Alpha3: "ECU"},
	{Identifier: "Egypt", Name: "Egypt", Numeric: 818, Alpha2: "EG", Alpha3: "EGY"},
	{Identifier: "ElSalvador", Name: "El Salvador", Numeric: 222, Alpha2: "SV", Alpha3: "SLV"},
	{Identifier: "EquatorialGuinea", Name: "Equatorial Guinea", Numeric: 226, Alpha2: "GQ", Alpha3: "GNQ"},
	{Identifier: "Eritrea", Name: "Eritrea", Numeric: 232, Alpha2: "ER", Alpha3: "ERI"},
	{Identifier: "Estonia", Name: "Estonia", Numeric: 233, Alpha2: "EE", Alpha3: "EST"},
	{Identifier: "Eswatini", Name: "Eswatini", Numeric: 748, Alpha2: "SZ", Alpha3: "SWZ"},
	{Identifier: "Ethiopia", Name: "Ethiopia", Numeric: 231, Alpha2: "ET", Alpha3: "ETH"},
	{Identifier: "FalklandIslands", Name: "Falkland Islands", Numeric: 238, Alpha2: "FK", Alpha3: "FLK"},
	{Identifier: "FaroeIslands", Name: "Faroe Islands", Numeric: 234, Alpha2: "FO", Alpha3: "FRO"},
	{Identifier: "Fiji", Name: "Fiji", Numeric: 242, Alpha2: "FJ", Alpha3: "FJI"},
	{Identifier: "Finland", Name: "Finland", Numeric: 246, Alpha2: "FI", Alpha3: "FIN"},
	{Identifier: "France", Name: "France", Numeric: 250, Alpha2: "FR", Alpha3: "FRA"},
	{Identifier: "FrenchGuiana", Name: "French Guiana", Numeric: 254, Alpha2: "GF", Alpha3: "GUF"},
	{Identifier: "FrenchPolynesia", Name: "French Polynesia", Numeric: 258, Alpha2: "PF", Alpha3: "PYF"},
	{Identifier: "FrenchSouthernTerritories", Name: "French Southern Territories", Numeric: 260, Alpha2: "TF", Alpha3: "ATF"},
	{Identifier: "Gabon", Name: "Gabon", Numeric: 266, Alpha2: "GA", Alpha3: "GAB"},
	{Identifier: "Gambia", Name: "Gambia", Numeric: 270, Alpha2: "GM", Alpha3: "GMB"},
	{Identifier: "Georgia", Name: "Georgia", Numeric: 268, Alpha2: "GE", Alpha3: "GEO"},
	{Identifier: "Germany", Name: "Germany", Numeric: 276, Alpha2: "DE", Alpha3: "DEU"},
	{Identifier: "Ghana", Name: "Ghana", Numeric: 288, Alpha2: "GH", Alpha3: "GHA"},
	{Identifier: "Gibraltar", Name: "Gibraltar", Numeric: 292, Alpha2: "GI", Alpha3: "GIB"},
	{Identifier: "Greece", Name: "Greece", Numeric: 300, Alpha2: "GR", Alpha3: "GRC"},
	{Identifier: "Greenland", Name: "Greenland", Numeric: 304, Alpha2: "GL", Alpha3: "GRL"},
	{Identifier: "Grenada", Name: "Grenada", Numeric: 308, Alpha2: "GD", Alpha3: "GRD"},
	{Identifier: "Guadeloupe", Name: "Guadeloupe", Numeric: 312, Alpha2: "GP", Alpha3: "GLP"},
	{Identifier: "Guam", Name: "Guam", Numeric: 316, Alpha2: "GU", Alpha3: "GUM"},
	{Identifier: "Guatemala", Name: "Guatemala", Numeric: 320, Alpha2: "GT", Alpha3: "GTM"},
	{Identifier: "Guernsey", Name: "Guernsey", Numeric: 831, Alpha2: "GG", Alpha3: "GGY"},
	{Identifier: "Guinea", Name: "Guinea", Numeric: 324, Alpha2: "GN", Alpha3: "GIN"},
	{Identifier: "GuineaBissau", Name: "Guinea-Bissau", Numeric: 624, Alpha2: "GW", Alpha3: "GNB"},
	{Identifier: "Guyana", Name: "Guyana", Numeric: 328, Alpha2: "GY", Alpha3: "GUY"},
	{Identifier: "Haiti", Name: "Haiti", Numeric: 332, Alpha2: "HT", Alpha3: "HTI"},
	{Identifier: "HeardIslandAndMcDonaldIslands", Name: "Heard Island and McDonald Islands", Numeric: 334, Alpha2: "HM", Alpha3: "HMD"},
	{Identifier: "HolySee", Name: "Holy See", Numeric: 336, Alpha2: "VA", Alpha3: "VAT"},
	{Identifier: "Honduras", Name: "Honduras", Numeric: 340, Alpha2: "HN", Alpha3: "HND"},
	{Identifier: "HongKong", Name: "Hong Kong", Numeric: 344, Alpha2: "HK", Alpha3: "HKG"},
	{Identifier: "Hungary", Name: "Hungary", Numeric: 348, Alpha2: "HU", Alpha3: "HUN"},
	{Identifier: "Iceland", Name: "Iceland", Numeric: 352, Alpha2: "IS", Alpha3: "ISL"},
	{Identifier: "India", Name: "India", Numeric: 356, Alpha2: "IN", Alpha3: "IND"},
	{Identifier: "Indonesia", Name: "Indonesia", Numeric: 360, Alpha2: "ID", Alpha3: "IDN"},
	{Identifier: "Iran", Name: "Iran", Numeric: 364, Alpha2: "IR", Alpha3: "IRN"},
	{Identifier: "Iraq", Name: "Iraq", Numeric: 368, Alpha2: "IQ", Alpha3: "IRQ"},
	{Identifier: "Ireland", Name: "Ireland", Numeric: 372, Alpha2: "IE", Alpha3: "IRL"},
	{Identifier: "IsleOfMan", Name: "Isle of Man", Numeric: 833, Alpha2: "IM", Alpha3: "IMN"},
	{Identifier: "Israel", Name: "Israel", Numeric: 376, Alpha2: "IL", Alpha3: "ISR"},
	{Identifier: "Italy", Name: "Italy", Numeric: 380, Alpha2: "IT", Alpha3: "ITA"},
	{Identifier: "Jamaica", Name: "Jamaica", Numeric: 388, Alpha2: "JM", Alpha3: "JAM"},
	{Identifier: "Japan", Name: "Japan", Numeric: 392, Alpha2: "JP", Alpha3: "JPN"},
	{Identifier: "Jersey", Name: "Jersey", Numeric: 832, Alpha2: "JE", Alpha3: "JEY"},
	{Identifier: "Jordan", Name: "Jordan", Numeric: 400, Alpha2: "JO", Alpha3: "JOR"},
	{Identifier: "Kazakhstan", Name: "Kazakhstan", Numeric: 398, Alpha2: "KZ", Alpha3: "KAZ"},
	{Identifier: "Kenya", Name: "Kenya", Numeric: 404, Alpha2: "KE", Alpha3: "KEN"},
	{Identifier: "Kiribati", Name: "Kiribati", Numeric: 296, Alpha2: "KI", Alpha3: "KIR"},
	{Identifier: "NorthKorea", Name: "North Korea", Numeric: 408, Alpha2: "KP", Alpha3: "PRK"},
	{Identifier: "SouthKorea", Name: "South Korea", Numeric: 410, Alpha2: "KR", Alpha3: "KOR"},
	{Identifier: "Kuwait", Name: "Kuwait", Numeric: 414, Alpha2: "KW", Alpha3: "KWT"},
	{Identifier: "Kyrgyzstan", Name: "Kyrgyzstan", Numeric: 417, Alpha2: "KG", Alpha3: "KGZ"},
	{Identifier: "Laos", Name: "Laos", Numeric: 418, Alpha2: "LA", Alpha3: "LAO"},
	{Identifier: "Latvia", Name: "Latvia", Numeric: 428, Alpha2: "LV", Alpha3: "LVA"},
	{Identifier: "Lebanon", Name: "Lebanon", Numeric: 422, Alpha2: "LB", Alpha3: "LBN"},
	{Identifier: "Lesotho", Name: "Lesotho", Numeric: 426, Alpha2: "LS", Alpha3: "LSO"},
	{Identifier: "Liberia", Name: "Liberia", Numeric: 430, Alpha2: "LR", Alpha3: "LBR"},
	{Identifier: "Libya", Name: "Libya", Numeric: 434, Alpha2: "LY", Alpha3: "LBY"},
	{Identifier: "Liechtenstein", Name: "Liechtenstein", Numeric: 438, Alpha2: "LI", Alpha3: "LIE"},
	{Identifier: "Lithuania", Name: "Lithuania", Numeric: 440, Alpha2: "LT", Alpha3: "LTU"},
	{Identifier: "Luxembourg", Name: "Luxembourg", Numeric: 442, Alpha2: "LU", Alpha3: "LUX"},
	{Identifier: "Macao", Name: "Macao", Numeric: 446, Alpha2: "MO", Alpha3: "MAC"},
	{Identifier: "Madagascar", Name: "Madagascar", Numeric: 450, Alpha2: "MG", Alpha3: "MDG"},
	{Identifier: "Malawi", Name: "Malawi", Numeric: 454, Alpha2: "MW", Alpha3: "MWI"},
	{Identifier: "Malaysia", Name: "Malaysia", Numeric: 458, Alpha2: "MY", Alpha3: "MYS"},
	{Identifier: "Maldives", Name: "Maldives", Numeric: 462, Alpha2: "MV", Alpha3: "MDV"},
	{Identifier: "Mali", Name: "Mali", Numeric: 466, Alpha2: "ML", Alpha3: "MLI"},
	{Identifier: "Malta", Name: "Malta", Numeric: 470, Alpha2: "MT", Alpha3: "MLT"},
	{Identifier: "MarshallIslands", Name: "Marshall Islands", Numeric: 584, Alpha2: "MH", Alpha3: "MHL"},
	{Identifier: "Martinique", Name: "Martinique", Numeric: 474, Alpha2: "MQ", Alpha3: "MTQ"},
	{Identifier: "Mauritania", Name: "Mauritania", Numeric: 478, Alpha2: "MR", Alpha3: "MRT"},
	{Identifier: "Mauritius", Name: "Mauritius", Numeric: 480, Alpha2: "MU", Alpha3: "MUS"},
	{Identifier: "Mayotte", Name: "Mayotte", Numeric: 175, Alpha2: "YT", Alpha3: "MYT"},
	{Identifier: "Mexico", Name: "Mexico", Numeric: 484, Alpha2: "MX", Alpha3: "MEX"},
	{Identifier: "Micronesia", Name: "Micronesia", Numeric: 583, Alpha2: "FM", Alpha3: "FSM"},
	{Identifier: "Moldova", Name: "Moldova", Numeric: 498, Alpha2: "MD", Alpha3: "MDA"},
	{Identifier: "Monaco", Name: "Monaco", Numeric: 492, Alpha2: "MC", Alpha3: "MCO"},
	{Identifier: "Mongolia", Name: "Mongolia", Numeric: 496, Alpha2: "MN", Alpha3: "MNG"},
	{Identifier: "Montenegro", Name: "Montenegro", Numeric: 499, Alpha2: "ME", Alpha3: "MNE"},
	{Identifier: "Montserrat", Name: "Montserrat", Numeric: 500, Alpha2: "MS", Alpha3: "MSR"},
	{Identifier: "Morocco", Name: "Morocco", Numeric: 504, Alpha2: "MA", Alpha3: "MAR"},
	{Identifier: "Mozambique", Name: "Mozambique", Numeric: 508, Alpha2: "MZ", Alpha3: "MOZ"},
	{Identifier: "Myanmar", Name: "Myanmar", Numeric: 104, Alpha2: "MM", Alpha3: "MMR"},
	{Identifier: "Namibia", Name: "Namibia", Numeric: 516, Alpha2: "NA", Alpha3: "NAM"},
	{Identifier: "Nauru", Name: "Nauru", Numeric: 520, Alpha2: "NR", Alpha3: "NRU"},
	{Identifier: "Nepal", Name: "Nepal", Numeric: 524, Alpha2: "NP", Alpha3: "NPL"},
	{Identifier: "Netherlands", Name: "Netherlands", Numeric: 528, Alpha2: "NL", Alpha3: "NLD"},
	{Identifier: "NewCaledonia", Name: "New Caledonia", Numeric: 540, Alpha2: "NC", Alpha3: "NCL"},
	{Identifier: "NewZealand", Name: "New Zealand", Numeric: 554, Alpha2: "NZ", Alpha3: "NZL"},
	{Identifier: "Nicaragua", Name: "Nicaragua", Numeric: 558, Alpha2: "NI", Alpha3: "NIC"},
	{Identifier: "Niger", Name: "Niger", Numeric: 562, Alpha2: "NE", Alpha3: "NER"},
	{Identifier: "Nigeria", Name: "Nigeria", Numeric: 566, Alpha2: "NG", Alpha3: "NGA"},
	{Identifier: "Niue", Name: "Niue", Numeric: 570, Alpha2: "NU", Alpha3: "NIU"},
	{Identifier: "NorfolkIsland", Name: "Norfolk Island", Numeric: 574, Alpha2: "NF", Alpha3: "NFK"},
	{Identifier: "NorthMacedonia", Name: "North Macedonia", Numeric: 807, Alpha2: "MK", Alpha3: "MKD"},
	{Identifier: "NorthernMarianaIslands", Name: "Northern Mariana Islands", Numeric: 580, Alpha2: "MP", Alpha3: "MNP"},
	{Identifier: "Norway", Name: "Norway", Numeric: 578, Alpha2: "NO", Alpha3: "NOR"},
	{Identifier: "Oman", Name: "Oman", Numeric: 512, Alpha2: "OM", Alpha3: "OMN"},
	{Identifier: "Pakistan", Name: "Pakistan", Numeric: 586, Alpha2: "PK", Alpha3: "PAK"},
	{Identifier: "Palau", Name: "Palau", Numeric: 585, Alpha2: "PW", Alpha3: "PLW"},
	{Identifier: "Palestine", Name: "Palestine", Numeric: 275, Alpha2: "PS", Alpha3: "PSE"},
	{Identifier: "Panama", Name: "Panama", Numeric: 591, Alpha2: "PA", Alpha3: "PAN"},
	{Identifier: "PapuaNewGuinea", Name: "Papua New Guinea", Numeric: 598, Alpha2: "PG", Alpha3: "PNG"},
	{Identifier: "Paraguay", Name: "Paraguay", Numeric: 600, Alpha2: "PY", Alpha3: "PRY"},
	{Identifier: "Peru", Name: "Peru", Numeric: 604, Alpha2: "PE", Alpha3: "PER"},
	{Identifier: "Philippines", Name: "Philippines", Numeric: 608, Alpha2: "PH", Alpha3: "PHL"},
	{Identifier: "Pitcairn", Name: "Pitcairn", Numeric: 612, Alpha2: "PN", Alpha3: "PCN"},
	{Identifier: "Poland", Name: "Poland", Numeric: 616, Alpha2: "PL", Alpha3: "POL"},
	{Identifier: "Portugal", Name: "Portugal", Numeric: 620, Alpha2: "PT", Alpha3: "PRT"},
	{Identifier: "PuertoRico", Name: "Puerto Rico", Numeric: 630, Alpha2: "PR", Alpha3: "PRI"},
	{Identifier: "Qatar", Name: "Qatar", Numeric: 634, Alpha2: "QA", Alpha3: "QAT"},
	{Identifier: "Reunion", Name: "Réunion", Numeric: 638, Alpha2: "RE", Alpha3: "REU"},
	{Identifier: "Romania", Name: "Romania", Numeric: 642, Alpha2: "RO", Alpha3: "ROU"},
	{Identifier: "Russia", Name: "Russia", Numeric: 643, Alpha2: "RU", Alpha3: "RUS"},
	{Identifier: "Rwanda", Name: "Rwanda", Numeric: 646, Alpha2: "RW", Alpha3: "RWA"},
	{Identifier: "SaintBarthelemy", Name: "Saint Barthélemy", Numeric: 652, Alpha2: "BL", Alpha3: "BLM"},
	{Identifier: "SaintHelenaAscensionAndTristanDaCunha", Name: "Saint Helena, Ascension and Tristan da Cunha", Numeric: 654, Alpha2: "SH", Alpha3: "SHN"},
	{Identifier: "SaintKittsAndNevis", Name: "Saint Kitts and Nevis", Numeric: 659, Alpha2: "KN", Alpha3: "KNA"},
	{Identifier: "SaintLucia", Name: "Saint Lucia", Numeric: 662, Alpha2: "LC", Alpha3: "LCA"},
	{Identifier: "SaintMartinFrenchPart", Name: "Saint Martin (French part)", Numeric: 663, Alpha2: "MF", Alpha3: "MAF"},
	{Identifier: "SaintPierreAndMiquelon", Name: "Saint Pierre and Miquelon", Numeric: 666, Alpha2: "PM", Alpha3: "SPM"},
	{Identifier: "SaintVincentAndTheGrenadines", Name: "Saint Vincent and the Grenadines", Numeric: 670, Alpha2: "VC", Alpha3: "VCT"},
	{Identifier: "Samoa", Name: "Samoa", Numeric: 882, Alpha2: "WS", Alpha3: "WSM"},
	{Identifier: "SanMarino", Name: "San Marino", Numeric: 674, Alpha2: "SM", Alpha3: "SMR"},
	{Identifier: "SaoTomeAndPrincipe", Name: "Sao Tome and Principe", Numeric: 678, Alpha2: "ST", Alpha3: "STP"},
	{Identifier: "SaudiArabia", Name: "Saudi Arabia", Numeric: 682, Alpha2: "SA", Alpha3: "SAU"},
	{Identifier: "Senegal", Name: "Senegal", Numeric: 686, Alpha2: "SN", Alpha3: "SEN"},
	{Identifier: "Serbia", Name: "Serbia", Numeric: 688, Alpha2: "RS", Alpha3: "SRB"},
	{Identifier: "Seychelles", Name: "Seychelles", Numeric: 690, Alpha2: "SC", Alpha3: "SYC"},
	{Identifier: "SierraLeone", Name: "Sierra Leone", Numeric: 694, Alpha2: "SL", Alpha3: "SLE"},
	{Identifier: "Singapore", Name: "Singapore", Numeric: 702, Alpha2: "SG", Alpha3: "SGP"},
	{Identifier: "SintMaartenDutchPart", Name: "Sint Maarten (Dutch part)", Numeric: 534, Alpha2: "SX", Alpha3: "SXM"},
	{Identifier: "Slovakia", Name: "Slovakia", Numeric: 703, Alpha2: "SK", Alpha3: "SVK"},
	{Identifier: "Slovenia", Name: "Slovenia", Numeric: 705, Alpha2: "SI", Alpha3: "SVN"},
	{Identifier: "SolomonIslands", Name: "Solomon Islands", Numeric: 90, Alpha2: "SB", Alpha3: "SLB"},
	{Identifier: "Somalia", Name: "Somalia", Numeric: 706, Alpha2: "SO", Alpha3: "SOM"},
	{Identifier: "SouthAfrica", Name: "South Africa", Numeric: 710, Alpha2: "ZA", Alpha3: "ZAF"},
	{Identifier: "SouthGeorgiaAndTheSouthSandwichIslands", Name: "South Georgia and the South Sandwich Islands", Numeric: 239, Alpha2: "GS", Alpha3: "SGS"},
	{Identifier: "SouthSudan", Name: "South Sudan", Numeric: 728, Alpha2: "SS", Alpha3: "SSD"},
	{Identifier: "Spain", Name: "Spain", Numeric: 724, Alpha2: "ES", Alpha3: "ESP"},
	{Identifier: "SriLanka", Name: "Sri Lanka", Numeric: 144, Alpha2: "LK", Alpha3: "LKA"},
	{Identifier: "Sudan", Name: "Sudan", Numeric: 729, Alpha2: "SD", Alpha3: "SDN"},
	{Identifier: "Suriname", Name: "Suriname", Numeric: 740, Alpha2: "SR", Alpha3: "SUR"},
	{Identifier: "SvalbardAndJanMayen", Name: "Svalbard and Jan Mayen", Numeric: 744, Alpha2: "SJ", Alpha3: "SJM"},
	{Identifier: "Sweden", Name: "Sweden", Numeric: 752, Alpha2: "SE", Alpha3: "SWE"},
	{Identifier: "Switzerland", Name: "Switzerland", Numeric: 756, Alpha2: "CH", Alpha3: "CHE"},
	{Identifier: "Syria", Name: "Syria", Numeric: 760, Alpha2: "SY", Alpha3: "SYR"},
	{Identifier: "Taiwan", Name: "Taiwan", Numeric: 158, Alpha2: "TW", Alpha3: "TWN"},
	{Identifier: "Tajikistan", Name: "Tajikistan", Numeric: 762, Alpha2: "TJ", Alpha3: "TJK"},
	{Identifier: "Tanzania", Name: "Tanzania", Numeric: 834, Alpha2: "TZ", Alpha3: "TZA"},
	{Identifier: "Thailand", Name: "Thailand", Numeric: 764, Alpha2: "TH", Alpha3: "THA"},
	{Identifier: "TimorLeste", Name: "Timor-Leste", Numeric: 626, Alpha2: "TL", Alpha3: "TLS"},
	{Identifier: "Togo", Name: "Togo", Numeric: 768, Alpha2: "TG", Alpha3: "TGO"},
	{Identifier: "Tokelau", Name: "Tokelau", Numeric: 772, Alpha2: "TK", Alpha3: "TKL"},
	{Identifier: "Tonga", Name: "Tonga", Numeric: 776, Alpha2: "TO", Alpha3: "TON"},
	{Identifier: "TrinidadAndTobago", Name: "Trinidad and Tobago", Numeric: 780, Alpha2: "TT", Alpha3: "TTO"},
	{Identifier: "Tunisia", Name: "Tunisia", Numeric: 788, Alpha2: "TN", Alpha3: "TUN"},
	{Identifier: "Turkiye", Name: "Türkiye", Numeric: 792, Alpha2: "TR", Alpha3: "TUR"},
	{Identifier: "Turkmenistan", Name: "Turkmenistan", Numeric: 795, Alpha2: "TM", Alpha3: "TKM"},
	{Identifier: "TurksAndCaicosIslands", Name: "Turks and Caicos Islands", Numeric: 796, Alpha2: "TC", Alpha3: "TCA"},
	{Identifier: "Tuvalu", Name: "Tuvalu", Numeric: 798, Alpha2: "TV", Alpha3: "TUV"},
	{Identifier: "Uganda", Name: "Uganda", Numeric: 800, Alpha2: "UG", Alpha3: "UGA"},
	{Identifier: "Ukraine", Name: "Ukraine", Numeric: 804, Alpha2: "UA", Alpha3: "UKR"},
	{Identifier: "UnitedArabEmirates", Name: "United Arab Emirates", Numeric: 784, Alpha2: "AE", Alpha3: "ARE"},
	{Identifier: "UnitedKingdom", Name: "United Kingdom", Numeric: 826, Alpha2: "GB", Alpha3: "GBR"},
	{Identifier: "UnitedStatesMinorOutlyingIslands", Name: "United States Minor Outlying Islands", Numeric: 581, Alpha2: "UM", Alpha3: "UMI"},
	{Identifier: "UnitedStates", Name: "United States", Numeric: 840, Alpha2: "US", Alpha3: "USA"},
	{Identifier: "Uruguay", Name: "Uruguay", Numeric: 858, Alpha2: "UY", Alpha3: "URY"},
	{Identifier: "Uzbekistan", Name: "Uzbekistan", Numeric: 860, Alpha2: "UZ", Alpha3: "UZB"},
	{Identifier: "Vanuatu", Name: "Vanuatu", Numeric: 548, Alpha2: "VU", Alpha3: "VUT"},
	{Identifier: "Venezuela", Name: "Venezuela", Numeric: 862, Alpha2: "VE", Alpha3: "VEN"},
	{Identifier: "Vietnam", Name: "Vietnam", Numeric: 704, Alpha2: "VN", Alpha3: "VNM"},
	{Identifier: "BritishVirginIslands", Name: "British Virgin Islands", Numeric: 92, Alpha2: "VG", Alpha3: "VGB"},
	{Identifier: "UsVirginIslands", Name: "US Virgin Islands", Numeric: 850, Alpha2: "VI", Alpha3: "VIR"},
	{Identifier: "WallisAndFutuna", Name: "Wallis and Futuna", Numeric: 876, Alpha2: "WF", Alpha3: "WLF"},
	{Identifier: "WesternSahara", Name: "Western Sahara", Numeric: 732, Alpha2: "EH", Alpha3: "ESH"},
	{Identifier: "Yemen", Name: "Yemen", Numeric: 887, Alpha2: "YE", Alpha3: "YEM"},
	{Identifier: "Zambia", Name: "Zambia", Numeric: 894, Alpha2: "ZM", Alpha3: "ZMB"},
	{Identifier: "Zimbabwe", Name: "Zimbabwe", Numeric: 716, Alpha2: "ZW", Alpha3: "ZWE"},
}
