package convert

// fallbackRates holds approximate Toman prices for currencies the live
// snapshot does not carry. Rough estimates, revised by hand now and then;
// consulted only after both snapshot sections come up empty.
var fallbackRates = map[string]float64{
	// Middle Eastern and Asian currencies
	"AFN": 0.5,
	"PKR": 0.15,
	"INR": 0.5,
	"BDT": 0.4,
	"LKR": 0.13,
	"NPR": 0.3,
	"BTN": 0.5,
	"MVR": 2.7,
	"IDR": 0.003,
	"MYR": 9.0,
	"SGD": 31.0,
	"BND": 31.0,
	"PHP": 0.75,
	"MMK": 0.02,
	"LAK": 0.002,
	"KHR": 0.01,
	"VND": 0.002,
	"MNT": 0.01,

	// African currencies
	"EGP": 1.3,
	"DZD": 0.3,
	"MAD": 4.2,
	"TND": 13.5,
	"LYD": 8.5,
	"SDG": 0.07,
	"ETB": 0.75,
	"KES": 0.32,
	"UGX": 0.01,
	"TZS": 0.02,
	"RWF": 0.04,
	"BIF": 0.02,
	"SOS": 0.07,
	"DJF": 0.23,
	"GHS": 3.5,
	"NGN": 0.28,
	"ZAR": 2.3,

	// Latin American currencies
	"BRL": 7.5,
	"MXN": 1.8,
	"ARS": 0.6,
	"CLP": 0.5,
	"COP": 0.1,
	"PEN": 1.1,

	// Cryptocurrencies
	"BTC":  1200000000,
	"ETH":  80000000,
	"USDT": 42000,
	"BNB":  15000000,
	"XRP":  20000,
	"ADA":  15000,
	"SOL":  3000000,
	"DOGE": 5000,
	"DOT":  250000,

	// Precious metals, per ounce
	"XAU": 70000000,
	"XAG": 800000,
	"XPT": 35000000,
	"XPD": 40000000,
}
