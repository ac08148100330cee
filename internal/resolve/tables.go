package resolve

// phraseRule is one exact-phrase entry. Phrases are checked in order with
// substring containment and the first hit wins, so the more ambiguous
// phrases (the rupee family in particular) sit at the top.
type phraseRule struct {
	phrase string
	code   string
}

var exactPhrases = []phraseRule{
	{"روپیه پاکستان", "PKR"},
	{"پاکستان روپیه", "PKR"},
	{"پاکستانی روپیه", "PKR"},
	{"pakistani rupee", "PKR"},
	{"pakistan rupee", "PKR"},
	{"pkr", "PKR"},
	{"روپیه هند", "INR"},
	{"هند روپیه", "INR"},
	{"هندی روپیه", "INR"},
	{"indian rupee", "INR"},
	{"india rupee", "INR"},
	{"inr", "INR"},
	{"دلار کانادا", "CAD"},
	{"canadian dollar", "CAD"},
	{"canada dollar", "CAD"},
	{"دلار استرالیا", "AUD"},
	{"australian dollar", "AUD"},
	{"australia dollar", "AUD"},
	{"دلار نیوزیلند", "NZD"},
	{"new zealand dollar", "NZD"},
	{"دلار سنگاپور", "SGD"},
	{"singapore dollar", "SGD"},
	{"دلار هنگ کنگ", "HKD"},
	{"hong kong dollar", "HKD"},
	{"دلار تایوان", "TWD"},
	{"taiwan dollar", "TWD"},
	{"ریال سعودی", "SAR"},
	{"saudi riyal", "SAR"},
	{"ریال قطر", "QAR"},
	{"qatari riyal", "QAR"},
	{"ریال عمان", "OMR"},
	{"omani riyal", "OMR"},
	{"ریال یمن", "YER"},
	{"yemeni riyal", "YER"},
	{"دینار کویت", "KWD"},
	{"kuwaiti dinar", "KWD"},
	{"دینار بحرین", "BHD"},
	{"bahraini dinar", "BHD"},
	{"دینار عراق", "IQD"},
	{"iraqi dinar", "IQD"},
	{"دینار اردن", "JOD"},
	{"jordanian dinar", "JOD"},
	{"دینار لیبی", "LYD"},
	{"libyan dinar", "LYD"},
	{"دینار الجزایر", "DZD"},
	{"algerian dinar", "DZD"},
	{"دینار تونس", "TND"},
	{"tunisian dinar", "TND"},
	{"درهم امارات", "AED"},
	{"uae dirham", "AED"},
	{"emirati dirham", "AED"},
	{"درهم مراکش", "MAD"},
	{"moroccan dirham", "MAD"},
	{"پوند انگلیس", "GBP"},
	{"پوند بریتانیا", "GBP"},
	{"british pound", "GBP"},
	{"pound sterling", "GBP"},
	{"پوند مصر", "EGP"},
	{"egyptian pound", "EGP"},
	{"پوند سودان", "SDG"},
	{"sudanese pound", "SDG"},
	{"لیره لبنان", "LBP"},
	{"lebanese pound", "LBP"},
	{"لیره سوریه", "SYP"},
	{"syrian pound", "SYP"},
	{"لیر ترکیه", "TRY"},
	{"turkish lira", "TRY"},
	{"فرانک سوئیس", "CHF"},
	{"swiss franc", "CHF"},
	{"روبل روسیه", "RUB"},
	{"russian ruble", "RUB"},
	{"ین ژاپن", "JPY"},
	{"japanese yen", "JPY"},
	{"یوان چین", "CNY"},
	{"chinese yuan", "CNY"},
	{"وون کره جنوبی", "KRW"},
	{"south korean won", "KRW"},
	{"پزوی مکزیک", "MXN"},
	{"mexican peso", "MXN"},
	{"پزوی فیلیپین", "PHP"},
	{"philippine peso", "PHP"},
	{"پزوی آرژانتین", "ARS"},
	{"argentine peso", "ARS"},
	{"پزوی شیلی", "CLP"},
	{"chilean peso", "CLP"},
	{"پزوی کلمبیا", "COP"},
	{"colombian peso", "COP"},
	{"رئال برزیل", "BRL"},
	{"brazilian real", "BRL"},
	{"رند آفریقای جنوبی", "ZAR"},
	{"south african rand", "ZAR"},
	{"رینگیت مالزی", "MYR"},
	{"malaysian ringgit", "MYR"},
	{"بات تایلند", "THB"},
	{"thai baht", "THB"},
	{"دونگ ویتنام", "VND"},
	{"vietnamese dong", "VND"},
	{"افغانی", "AFN"},
	{"afghani", "AFN"},
	{"تاکا بنگلادش", "BDT"},
	{"bangladeshi taka", "BDT"},
}

// aliases is the whole-token lookup table, consulted only when no exact
// phrase matched. Keys are lowercase.
var aliases = map[string]string{
	"دلار": "USD", "dollar": "USD", "usd": "USD", "دلار آمریکا": "USD",
	"یورو": "EUR", "euro": "EUR", "eur": "EUR", "یورو اروپا": "EUR",
	"پوند": "GBP", "pound": "GBP", "gbp": "GBP", "پوند انگلیس": "GBP",
	"درهم": "AED", "dirham": "AED", "aed": "AED", "درهم امارات": "AED",
	"لیر": "TRY", "lira": "TRY", "try": "TRY", "لیر ترکیه": "TRY",
	"تومان": "TOMAN", "toman": "TOMAN", "تومن": "TOMAN", "irt": "TOMAN",
	"ریال": "IRR", "rial": "IRR", "irr": "IRR",

	"دلار کانادا": "CAD", "cad": "CAD", "canadian dollar": "CAD",
	"دلار استرالیا": "AUD", "aud": "AUD", "australian dollar": "AUD",
	"یوان": "CNY", "yuan": "CNY", "cny": "CNY", "یوان چین": "CNY",
	"ین ژاپن": "JPY", "yen": "JPY", "jpy": "JPY", "ین ژاپن (100 ین)": "JPY",
	"فرانک سوئیس": "CHF", "swiss franc": "CHF", "chf": "CHF",
	"رینگیت": "MYR", "ringgit": "MYR", "myr": "MYR", "رینگیت مالزی": "MYR",
	"بات": "THB", "baht": "THB", "thb": "THB", "بات تایلند": "THB",
	"دلار سنگاپور": "SGD", "sgd": "SGD", "singapore dollar": "SGD",
	"دلار هنگ کنگ": "HKD", "hkd": "HKD", "hong kong dollar": "HKD",
	"روپیه": "INR", "rupee": "INR", "inr": "INR", "روپیه هند": "INR",
	"وون": "KRW", "won": "KRW", "krw": "KRW", "وون کره جنوبی": "KRW",
	"کرون": "SEK", "krona": "SEK", "sek": "SEK", "کرون سوئد": "SEK",
	"کرون نروژ": "NOK", "nok": "NOK", "norwegian krone": "NOK",
	"کرون دانمارک": "DKK", "dkk": "DKK", "danish krone": "DKK",
	"روبل": "RUB", "ruble": "RUB", "rub": "RUB", "روبل روسیه": "RUB",
	"منات": "AZN", "manat": "AZN", "azn": "AZN", "منات آذربایجان": "AZN",
	"درام": "AMD", "dram": "AMD", "amd": "AMD", "درام ارمنستان": "AMD",
	"لاری": "GEL", "lari": "GEL", "gel": "GEL", "لاری گرجستان": "GEL",
	"سوم": "KGS", "som": "KGS", "kgs": "KGS", "سوم قرقیزستان": "KGS",
	"سامانی": "TJS", "somoni": "TJS", "tjs": "TJS", "سامانی تاجیکستان": "TJS",
	"سوم ازبکستان": "UZS", "uzs": "UZS", "uzbekistan som": "UZS",
	"تنگه": "KZT", "tenge": "KZT", "kzt": "KZT", "تنگه قزاقستان": "KZT",
	"افغانی": "AFN", "afghani": "AFN", "afn": "AFN", "افغانی افغانستان": "AFN",
	"روپیه پاکستان": "PKR", "pkr": "PKR", "pakistani rupee": "PKR",
	"پوند سوریه": "SYP", "syp": "SYP", "syrian pound": "SYP", "لیره سوریه": "SYP",
	"دینار عراق": "IQD", "iqd": "IQD", "iraqi dinar": "IQD",
	"ریال عربستان": "SAR", "sar": "SAR", "saudi riyal": "SAR",
	"ریال قطر": "QAR", "qar": "QAR", "qatari riyal": "QAR",
	"دینار کویت": "KWD", "kwd": "KWD", "kuwaiti dinar": "KWD",
	"دینار بحرین": "BHD", "bhd": "BHD", "bahraini dinar": "BHD",
	"ریال عمان": "OMR", "omr": "OMR", "omani rial": "OMR",
	"ریال یمن": "YER", "yer": "YER", "yemeni rial": "YER",
	"انس طلا": "XAU", "gold": "XAU", "طلا": "XAU", "اونس طلا": "XAU",
	"انس نقره": "XAG", "silver": "XAG", "نقره": "XAG", "اونس نقره": "XAG",
	"انس پلاتین": "XPT", "platinum": "XPT", "پلاتین": "XPT", "اونس پلاتین": "XPT",
	"انس پالادیوم": "XPD", "palladium": "XPD", "پالادیوم": "XPD", "اونس پالادیوم": "XPD",

	"بیت کوین": "BTC", "bitcoin": "BTC", "btc": "BTC",
	"اتریوم": "ETH", "ethereum": "ETH", "eth": "ETH",
	"تتر": "USDT", "tether": "USDT", "usdt": "USDT",
	"بایننس کوین": "BNB", "binance coin": "BNB", "bnb": "BNB",
	"کاردانو": "ADA", "cardano": "ADA", "ada": "ADA",
	"ریپل": "XRP", "ripple": "XRP", "xrp": "XRP",
	"دوج کوین": "DOGE", "dogecoin": "DOGE", "doge": "DOGE",
	"پولکادات": "DOT", "polkadot": "DOT", "dot": "DOT",
	// "sol" itself belongs to the Peruvian sol, further down.
	"سولانا": "SOL", "solana": "SOL",
	"شیبا اینو": "SHIB", "shiba inu": "SHIB", "shib": "SHIB",
	"لایت کوین": "LTC", "litecoin": "LTC", "ltc": "LTC",
	"ترون": "TRX", "tron": "TRX", "trx": "TRX",
	"آوالانچ": "AVAX", "avalanche": "AVAX", "avax": "AVAX",
	"چین لینک": "LINK", "chainlink": "LINK", "link": "LINK",
	"یونی سواپ": "UNI", "uniswap": "UNI", "uni": "UNI",
	"کازماس": "ATOM", "cosmos": "ATOM", "atom": "ATOM",
	"مونرو": "XMR", "monero": "XMR", "xmr": "XMR",
	"اتریوم کلاسیک": "ETC", "ethereum classic": "ETC", "etc": "ETC",
	"فایل کوین": "FIL", "filecoin": "FIL", "fil": "FIL",

	"بیر اتیوپی": "ETB", "etb": "ETB", "ethiopian birr": "ETB",
	"فرانک گینه": "GNF", "gnf": "GNF", "guinean franc": "GNF",
	"گواتزال گواتمالا": "GTQ", "gtq": "GTQ", "guatemalan quetzal": "GTQ",
	"دلار گویان": "GYD", "gyd": "GYD", "guyanese dollar": "GYD",
	"لمپیرا هندوراس": "HNL", "hnl": "HNL", "honduran lempira": "HNL",
	"گورده هایتی": "HTG", "htg": "HTG", "haitian gourde": "HTG", "گورد هائیتی": "HTG",
	"روپیه اندونزی": "IDR", "idr": "IDR", "indonesian rupiah": "IDR",
	"شکل جدید اسرائیل": "ILS", "ils": "ILS", "israeli new shekel": "ILS",
	"دینار اردن": "JOD", "jod": "JOD", "jordanian dinar": "JOD",
	"شیلینگ کنیا": "KES", "kes": "KES", "kenyan shilling": "KES",
	"کیپ لائوس": "LAK", "lak": "LAK", "lao kip": "LAK", "kip": "LAK",
	"پوند لبنان": "LBP", "lbp": "LBP", "lebanese pound": "LBP",
	"روپیه سریلانکا": "LKR", "lkr": "LKR", "sri lankan rupee": "LKR",
	"دلار لیبریا": "LRD", "lrd": "LRD", "liberian dollar": "LRD",
	"لوتی لسوتو": "LSL", "lsl": "LSL", "lesotho loti": "LSL",
	"دینار لیبی": "LYD", "lyd": "LYD", "libyan dinar": "LYD",
	"مراکش درهم": "MAD", "mad": "MAD", "moroccan dirham": "MAD", "دزد": "MAD",
	"لئوی مولداوی": "MDL", "mdl": "MDL", "moldovan leu": "MDL", "leu": "MDL", "لئو مولداوی": "MDL",
	"آریاری مالاگاسی": "MGA", "mga": "MGA", "malagasy ariary": "MGA", "آریاری ماداگاسکار": "MGA",
	"دنار مقدونیه": "MKD", "mkd": "MKD", "macedonian denar": "MKD", "denar": "MKD",
	"کیات میانمار": "MMK", "mmk": "MMK", "myanmar kyat": "MMK", "kyat": "MMK",
	"توگروگ مغولستان": "MNT", "mnt": "MNT", "mongolian tugrik": "MNT", "tugrik": "MNT",
	"پاتاکای ماکائو": "MOP", "mop": "MOP", "macanese pataca": "MOP", "pataca": "MOP", "پاتاکا ماکائو": "MOP",
	"اوگوئیای موریتانی": "MRU", "mru": "MRU", "mauritanian ouguiya": "MRU", "ouguiya": "MRU",
	"روپیه موریس": "MUR", "mur": "MUR", "mauritian rupee": "MUR",
	"روفیا مالدیو": "MVR", "mvr": "MVR", "maldivian rufiyaa": "MVR", "rufiyaa": "MVR",
	"کواچای مالاوی": "MWK", "mwk": "MWK", "malawian kwacha": "MWK", "kwacha": "MWK", "کواچا مالاوی": "MWK",
	"پزوی مکزیک": "MXN", "mxn": "MXN", "mexican peso": "MXN",
	"متیکال موزامبیک": "MZN", "mzn": "MZN", "mozambican metical": "MZN", "metical": "MZN",
	"دلار نامیبیا": "NAD", "nad": "NAD", "namibian dollar": "NAD", "دلار نامبیا": "NAD",
	"نیرا نیجریه": "NGN", "ngn": "NGN", "nigerian naira": "NGN", "naira": "NGN", "نایرای نیجریه": "NGN",
	"کوردوبا نیکاراگوئه": "NIO", "nio": "NIO", "nicaraguan córdoba": "NIO", "کوردوبای نیکاراگوئه": "NIO",
	"روپیه نپال": "NPR", "npr": "NPR", "nepalese rupee": "NPR",
	"دلار نیوزیلند": "NZD", "nzd": "NZD", "new zealand dollar": "NZD",
	"بولبوئا پاناما": "PAB", "pab": "PAB", "panamanian balboa": "PAB", "balboa": "PAB", "بالبوآ پاناما": "PAB",
	"نوئووسول پرو": "PEN", "pen": "PEN", "peruvian nuevo sol": "PEN", "nuevo sol": "PEN",
	"کینا پاپوا گینه نو": "PGK", "pgk": "PGK", "papua new guinean kina": "PGK", "kina": "PGK", "کینای پاپوآ گینه نو": "PGK",
	"پزوی فیلیپین": "PHP", "php": "PHP", "philippine peso": "PHP",
	"زلوتی لهستان": "PLN", "pln": "PLN", "polish złoty": "PLN", "złoty": "PLN",
	"گورانی پاراگوئه": "PYG", "pyg": "PYG", "paraguayan guaraní": "PYG", "guaraní": "PYG", "گوارانی پاراگوئه": "PYG",
	"لئو رومانی": "RON", "ron": "RON", "romanian leu": "RON", "لئوی رومانی": "RON",
	"دینار صربستان": "RSD", "rsd": "RSD", "serbian dinar": "RSD",
	"فرانک رواندا": "RWF", "rwf": "RWF", "rwandan franc": "RWF",
	"دلار جزایر سلیمان": "SBD", "sbd": "SBD", "solomon islands dollar": "SBD",
	"روپیه سیشل": "SCR", "scr": "SCR", "seychellois rupee": "SCR",
	"پوند سودان": "SDG", "sdg": "SDG", "sudanese pound": "SDG",
	"لئون سیرالئون": "SLE", "sle": "SLE", "sierra leonean leone": "SLE", "leone": "SLE",
	"شیلینگ سومالی": "SOS", "sos": "SOS", "somali shilling": "SOS", "shilling": "SOS",
	"دلار سورینام": "SRD", "srd": "SRD", "surinamese dollar": "SRD",
	"پوند جنوب سودان": "SSP", "ssp": "SSP", "south sudanese pound": "SSP",
	"دبرای سائوتومه و پرینسیپ": "STN", "stn": "STN", "são tomé and príncipe dobra": "STN", "dobra": "STN",
	"کولون السالوادور": "SVC", "svc": "SVC", "salvadoran colón": "SVC", "colón": "SVC", "کولون سالوادور": "SVC",
	"لیلانگی سوازیلند": "SZL", "szl": "SZL", "swazi lilangeni": "SZL", "lilangeni": "SZL", "لیلانگنی سوازیلند": "SZL",
	"دلار جدید تایوان": "TWD", "twd": "TWD", "new taiwan dollar": "TWD",
	"شیلینگ تانزانیا": "TZS", "tzs": "TZS", "tanzanian shilling": "TZS",
	"هریونای اوکراین": "UAH", "uah": "UAH", "ukrainian hryvnia": "UAH", "hryvnia": "UAH",
	"شیلینگ اوگاندا": "UGX", "ugx": "UGX", "ugandan shilling": "UGX",
	"پزوی اروگوئه": "UYU", "uyu": "UYU", "uruguayan peso": "UYU", "پزوی اوروگوئه": "UYU",
	"بولیوار ونزوئلا": "VES", "ves": "VES", "venezuelan bolívar soberano": "VES", "bolívar soberano": "VES",
	"دونگ ویتنام": "VND", "vnd": "VND", "vietnamese đồng": "VND", "đồng": "VND", "دانگ ویتنام": "VND",
	"واتوی وانوآتو": "VUV", "vuv": "VUV", "vanuatu vatu": "VUV", "vatu": "VUV",
	"تالای ساموآ": "WST", "wst": "WST", "samoan tālā": "WST", "tālā": "WST",
	"فرانک آفریقای مرکزی": "XAF", "xaf": "XAF", "central african cfa franc": "XAF",
	"دلار شرق کارائیب": "XCD", "xcd": "XCD", "east caribbean dollar": "XCD",
	"فرانک آفریقای غربی": "XOF", "xof": "XOF", "west african cfa franc": "XOF",
	"فرانک اقیانوسیه": "XPF", "xpf": "XPF", "cfp franc": "XPF", "franc pacifique": "XPF",
	"کواچا زامبیا": "ZMW", "zmw": "ZMW", "zambian kwacha": "ZMW", "کواچای زامبیا": "ZMW",
	"دلار زیمبابوه": "ZWL", "zwl": "ZWL", "zimbabwean dollar": "ZWL",
	"منات ترکمنستان": "TMT", "tmt": "TMT", "turkmenistan manat": "TMT", "tmm": "TMT",
	"لک آلبانی": "ALL", "all": "ALL", "albanian lek": "ALL", "lek": "ALL",
	"دلار باربادوس": "BBD", "bbd": "BBD", "barbadian dollar": "BBD",
	"تاکا بنگلادش": "BDT", "bdt": "BDT", "bangladeshi taka": "BDT", "taka": "BDT",
	"لو بلغارستان": "BGN", "bgn": "BGN", "bulgarian lev": "BGN", "lev": "BGN",
	"فرانک بوروندی": "BIF", "bif": "BIF", "burundian franc": "BIF",
	"دلار برونئی": "BND", "bnd": "BND", "brunei dollar": "BND",
	"دلار باهاماس": "BSD", "bsd": "BSD", "bahamian dollar": "BSD",
	"پوله بوتسوانا": "BWP", "bwp": "BWP", "botswana pula": "BWP", "pula": "BWP",
	"روبل بلاروس": "BYN", "byn": "BYN", "belarusian ruble": "BYN",
	"دلار بلیز": "BZD", "bzd": "BZD", "belize dollar": "BZD",
	"پزوی کوبا": "CUP", "cup": "CUP", "cuban peso": "CUP",
	"کرون چک": "CZK", "czk": "CZK", "czech koruna": "CZK", "koruna": "CZK",
	"فرانک جیبوتی": "DJF", "djf": "DJF", "djiboutian franc": "DJF",
	"پزوی دومنیکن": "DOP", "dop": "DOP", "dominican peso": "DOP",
	"دینار الجزایر": "DZD", "dzd": "DZD", "algerian dinar": "DZD",
	"کونا کرواسی": "HRK", "hrk": "HRK", "croatian kuna": "HRK", "kuna": "HRK",
	"کرونا ایسلند": "ISK", "isk": "ISK", "icelandic króna": "ISK", "króna": "ISK",
	"دلار جامایکا": "JMD", "jmd": "JMD", "jamaican dollar": "JMD",
	"ریل کامبوج": "KHR", "khr": "KHR", "cambodian riel": "KHR", "riel": "KHR",
	"فرانک کومور": "KMF", "kmf": "KMF", "comorian franc": "KMF",
	"پوند سینت هلنا": "SHP", "shp": "SHP", "saint helena pound": "SHP",
	"دینار تونس": "TND", "tnd": "TND", "tunisian dinar": "TND",
	"دلار ترینیداد و توباگو": "TTD", "ttd": "TTD", "trinidad and tobago dollar": "TTD",
	"سدی غنا": "GHS", "ghs": "GHS", "ghanaian cedi": "GHS", "cedi": "GHS",
	"سول پرو": "PEN", "peruvian sol": "PEN", "sol": "PEN",
	"پزوی شیلی": "CLP", "clp": "CLP", "chilean peso": "CLP",
	"پوند مصر": "EGP", "egp": "EGP", "egyptian pound": "EGP",
	"رئال برزیل": "BRL", "brl": "BRL", "brazilian real": "BRL", "real": "BRL",
	"پزوی کلمبیا": "COP", "cop": "COP", "colombian peso": "COP",
	"پزوی آرژانتین": "ARS", "ars": "ARS", "argentine peso": "ARS",
	"دلار جزایر کیمن": "KYD", "kyd": "KYD", "cayman islands dollar": "KYD",
	"فورینت مجارستان": "HUF", "huf": "HUF", "hungarian forint": "HUF", "forint": "HUF",
	"هریونیا اوکراین": "UAH",
	"رند آفریقای جنوبی": "ZAR", "zar": "ZAR", "south african rand": "ZAR", "rand": "ZAR",
	"دلار فیجی": "FJD", "fjd": "FJD", "fijian dollar": "FJD",
	"دلاسی گامبیا": "GMD", "gmd": "GMD", "gambian dalasi": "GMD", "dalasi": "GMD",
	"فرانک آفریقا": "XAF",
	"وانواتو واتو": "VUV",
	"آنتیل گیلدر هلند": "ANG", "ang": "ANG", "antillean guilder": "ANG", "guilder": "ANG",
	"دوبرا سائوتومه و پرنسیپ": "STN",
	"دلار کارائیب شرقی": "XCD",
}

// qualifier maps a country hint to a code inside one family.
type qualifier struct {
	hints []string
	code  string
}

// familyRule is one name-family heuristic. Families run in a fixed order
// and a later family can override an earlier match, a quirk carried over
// from the upstream behavior. Only the dollar family has a default.
type familyRule struct {
	terms       []string
	qualifiers  []qualifier
	defaultCode string
}

var familyRules = []familyRule{
	{
		terms: []string{"دلار", "dollar"},
		qualifiers: []qualifier{
			{[]string{"کانادا", "canada"}, "CAD"},
			{[]string{"استرالیا", "australia"}, "AUD"},
			{[]string{"نیوزیلند", "new zealand"}, "NZD"},
			{[]string{"سنگاپور", "singapore"}, "SGD"},
			{[]string{"هنگ کنگ", "hong kong"}, "HKD"},
			{[]string{"تایوان", "taiwan"}, "TWD"},
			{[]string{"برونئی", "brunei"}, "BND"},
			{[]string{"لیبریا", "liberia"}, "LRD"},
			{[]string{"نامیبیا", "namibia"}, "NAD"},
			{[]string{"فیجی", "fiji"}, "FJD"},
			{[]string{"جامائیکا", "jamaica"}, "JMD"},
			{[]string{"باهاما", "bahamas"}, "BSD"},
			{[]string{"بلیز", "belize"}, "BZD"},
			{[]string{"باربادوس", "barbados"}, "BBD"},
		},
		defaultCode: "USD",
	},
	{
		terms: []string{"روپیه", "rupee"},
		qualifiers: []qualifier{
			{[]string{"پاکستان", "pakistan"}, "PKR"},
			{[]string{"هند", "india"}, "INR"},
			{[]string{"سریلانکا", "sri lanka"}, "LKR"},
			{[]string{"نپال", "nepal"}, "NPR"},
			{[]string{"اندونزی", "indonesia"}, "IDR"},
			{[]string{"موریس", "mauritius"}, "MUR"},
			{[]string{"سیشل", "seychelles"}, "SCR"},
		},
	},
	{
		terms: []string{"دینار", "dinar"},
		qualifiers: []qualifier{
			{[]string{"کویت", "kuwait"}, "KWD"},
			{[]string{"بحرین", "bahrain"}, "BHD"},
			{[]string{"عراق", "iraq"}, "IQD"},
			{[]string{"اردن", "jordan"}, "JOD"},
			{[]string{"لیبی", "libya"}, "LYD"},
			{[]string{"الجزایر", "algeria"}, "DZD"},
			{[]string{"تونس", "tunisia"}, "TND"},
			{[]string{"صربستان", "serbia"}, "RSD"},
		},
	},
	{
		terms: []string{"ریال", "riyal"},
		qualifiers: []qualifier{
			{[]string{"سعودی", "saudi"}, "SAR"},
			{[]string{"قطر", "qatar"}, "QAR"},
			{[]string{"عمان", "oman"}, "OMR"},
			{[]string{"یمن", "yemen"}, "YER"},
			{[]string{"ایران", "iran"}, "IRR"},
		},
	},
	{
		terms: []string{"درهم", "dirham"},
		qualifiers: []qualifier{
			{[]string{"امارات", "uae", "emirates"}, "AED"},
			{[]string{"مراکش", "morocco"}, "MAD"},
		},
	},
	{
		terms: []string{"پوند", "pound"},
		qualifiers: []qualifier{
			{[]string{"انگلیس", "بریتانیا", "uk", "british", "sterling"}, "GBP"},
			{[]string{"مصر", "egypt"}, "EGP"},
			{[]string{"سودان", "sudan"}, "SDG"},
			{[]string{"لبنان", "lebanon"}, "LBP"},
			{[]string{"سوریه", "syria"}, "SYP"},
		},
	},
	{
		terms: []string{"فرانک", "franc"},
		qualifiers: []qualifier{
			{[]string{"سوئیس", "swiss"}, "CHF"},
			{[]string{"رواندا", "rwanda"}, "RWF"},
			{[]string{"جیبوتی", "djibouti"}, "DJF"},
			{[]string{"بوروندی", "burundi"}, "BIF"},
		},
	},
	{
		terms: []string{"پزو", "peso"},
		qualifiers: []qualifier{
			{[]string{"مکزیک", "mexico"}, "MXN"},
			{[]string{"فیلیپین", "philippines"}, "PHP"},
			{[]string{"آرژانتین", "argentina"}, "ARS"},
			{[]string{"شیلی", "chile"}, "CLP"},
			{[]string{"کلمبیا", "colombia"}, "COP"},
			{[]string{"کوبا", "cuba"}, "CUP"},
			{[]string{"دومنیکن", "dominican"}, "DOP"},
			{[]string{"اروگوئه", "uruguay"}, "UYU"},
		},
	},
}
