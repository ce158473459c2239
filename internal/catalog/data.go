// Package catalog holds the static airport and flight reference data.
package catalog

import "github.com/Domenick1991/flightbooking/internal/domain"

var airports = []domain.Airport{
	{ID: "BKK", Name: "Suvarnabhumi (BKK)", City: "Bangkok"},
	{ID: "DMK", Name: "Don Mueang (DMK)", City: "Bangkok"},
	{ID: "CNX", Name: "Chiang Mai International (CNX)", City: "Chiang Mai"},
	{ID: "CEI", Name: "Mae Fah Luang Chiang Rai (CEI)", City: "Chiang Rai"},
	{ID: "HGN", Name: "Mae Hong Son (HGN)", City: "Mae Hong Son"},
	{ID: "NNT", Name: "Nan Nakhon (NNT)", City: "Nan"},
	{ID: "PRH", Name: "Phrae (PRH)", City: "Phrae"},
	{ID: "PHS", Name: "Phitsanulok (PHS)", City: "Phitsanulok"},
	{ID: "KKC", Name: "Khon Kaen (KKC)", City: "Khon Kaen"},
	{ID: "UBP", Name: "Ubon Ratchathani (UBP)", City: "Ubon Ratchathani"},
	{ID: "UTH", Name: "Udon Thani (UTH)", City: "Udon Thani"},
	{ID: "BFV", Name: "Buriram (BFV)", City: "Buriram"},
	{ID: "SNO", Name: "Sakon Nakhon (SNO)", City: "Sakon Nakhon"},
	{ID: "HKT", Name: "Phuket International (HKT)", City: "Phuket"},
	{ID: "HDY", Name: "Hat Yai International (HDY)", City: "Songkhla"},
	{ID: "USM", Name: "Samui (USM)", City: "Surat Thani"},
	{ID: "KBV", Name: "Krabi International (KBV)", City: "Krabi"},
	{ID: "URT", Name: "Surat Thani (URT)", City: "Surat Thani"},
	{ID: "NST", Name: "Nakhon Si Thammarat (NST)", City: "Nakhon Si Thammarat"},
	{ID: "TST", Name: "Trang (TST)", City: "Trang"},
	{ID: "UTP", Name: "U-Tapao (UTP)", City: "Rayong/Pattaya"},
}

var flights = []domain.Flight{
	{ID: "f1", Airline: "Thai Smile", From: "BKK", FromTime: "08:00", To: "CNX", ToTime: "09:15", Duration: "01h 15m", Price: 1950, Perks: "Free Snack"},
	{ID: "f2", Airline: "AirAsia", From: "BKK", FromTime: "10:30", To: "CNX", ToTime: "11:45", Duration: "01h 15m", Price: 1790, Promo: "Low fare"},
	{ID: "f3", Airline: "Bangkok Airways", From: "BKK", FromTime: "09:00", To: "HKT", ToTime: "10:20", Duration: "01h 20m", Price: 2900, Perks: "Lounge Access"},
	{ID: "f4", Airline: "Thai Vietjet", From: "BKK", FromTime: "14:00", To: "HKT", ToTime: "15:20", Duration: "01h 20m", Price: 1850, Promo: "Book now!"},
	{ID: "f5", Airline: "Thai Smile", From: "BKK", FromTime: "11:00", To: "KKC", ToTime: "12:00", Duration: "01h 00m", Price: 1400, Perks: "Free Snack"},
	{ID: "f6", Airline: "AirAsia", From: "BKK", FromTime: "16:00", To: "HDY", ToTime: "17:25", Duration: "01h 25m", Price: 1650},
	{ID: "f7", Airline: "Nok Air", From: "DMK", FromTime: "07:30", To: "CNX", ToTime: "08:40", Duration: "01h 10m", Price: 1600, Perks: "Free Water"},
	{ID: "f8", Airline: "Thai Lion Air", From: "DMK", FromTime: "13:00", To: "CNX", ToTime: "14:10", Duration: "01h 10m", Price: 1550, Promo: "Hot Deal"},
	{ID: "f9", Airline: "AirAsia", From: "DMK", FromTime: "10:00", To: "HKT", ToTime: "11:20", Duration: "01h 20m", Price: 1900},
	{ID: "f10", Airline: "Nok Air", From: "DMK", FromTime: "15:00", To: "UBP", ToTime: "16:00", Duration: "01h 00m", Price: 1350, Perks: "Free Water", Promo: "Fly Sabai"},
	{ID: "f11", Airline: "Thai Lion Air", From: "DMK", FromTime: "09:30", To: "CEI", ToTime: "10:45", Duration: "01h 15m", Price: 1700},
	{ID: "f12", Airline: "Thai Smile", From: "CNX", FromTime: "10:00", To: "BKK", ToTime: "11:15", Duration: "01h 15m", Price: 1990, Perks: "Free Snack"},
	{ID: "f13", Airline: "AirAsia", From: "CNX", FromTime: "18:00", To: "BKK", ToTime: "19:15", Duration: "01h 15m", Price: 1820},
	{ID: "f14", Airline: "Nok Air", From: "CNX", FromTime: "12:00", To: "DMK", ToTime: "13:10", Duration: "01h 10m", Price: 1580, Perks: "Free Water"},
	{ID: "f15", Airline: "Thai Lion Air", From: "CNX", FromTime: "16:30", To: "DMK", ToTime: "17:40", Duration: "01h 10m", Price: 1520},
	{ID: "f16", Airline: "AirAsia", From: "CNX", FromTime: "14:00", To: "HKT", ToTime: "16:00", Duration: "02h 00m", Price: 2550, Promo: "Fly Direct"},
	{ID: "f17", Airline: "AirAsia", From: "CNX", FromTime: "09:00", To: "KKC", ToTime: "10:10", Duration: "01h 10m", Price: 1900},
	{ID: "f18", Airline: "Bangkok Airways", From: "HKT", FromTime: "11:30", To: "BKK", ToTime: "12:50", Duration: "01h 20m", Price: 3100, Perks: "Lounge Access"},
	{ID: "f19", Airline: "Thai Vietjet", From: "HKT", FromTime: "17:00", To: "BKK", ToTime: "18:20", Duration: "01h 20m", Price: 1980},
	{ID: "f20", Airline: "Thai Lion Air", From: "HKT", FromTime: "08:00", To: "DMK", ToTime: "09:20", Duration: "01h 20m", Price: 1880},
	{ID: "f21", Airline: "AirAsia", From: "HKT", FromTime: "19:00", To: "CNX", ToTime: "21:00", Duration: "02h 00m", Price: 2650},
	{ID: "f22", Airline: "AirAsia", From: "HKT", FromTime: "13:30", To: "UTH", ToTime: "15:15", Duration: "01h 45m", Price: 2400},
	{ID: "f23", Airline: "Thai Smile", From: "KKC", FromTime: "13:00", To: "BKK", ToTime: "14:00", Duration: "01h 00m", Price: 1450, Perks: "Free Snack"},
	{ID: "f24", Airline: "AirAsia", From: "KKC", FromTime: "11:00", To: "CNX", ToTime: "12:10", Duration: "01h 10m", Price: 1950},
	{ID: "f25", Airline: "Nok Air", From: "HDY", FromTime: "10:00", To: "BKK", ToTime: "11:25", Duration: "01h 25m", Price: 1700, Perks: "Free Water"},
	{ID: "f26", Airline: "Thai Vietjet", From: "HDY", FromTime: "14:00", To: "CNX", ToTime: "15:50", Duration: "01h 50m", Price: 2300},
	{ID: "f27", Airline: "AirAsia", From: "CEI", FromTime: "11:30", To: "DMK", ToTime: "12:45", Duration: "01h 15m", Price: 1750},
	{ID: "f28", Airline: "Nok Air", From: "UBP", FromTime: "09:00", To: "DMK", ToTime: "10:00", Duration: "01h 00m", Price: 1380, Perks: "Free Water"},
	{ID: "f29", Airline: "AirAsia", From: "UTH", FromTime: "16:00", To: "HKT", ToTime: "17:45", Duration: "01h 45m", Price: 2450},
}

// Airports returns a copy of the airport list.
func Airports() []domain.Airport {
	out := make([]domain.Airport, len(airports))
	copy(out, airports)
	return out
}

// Flights returns a copy of the flight list.
func Flights() []domain.Flight {
	out := make([]domain.Flight, len(flights))
	copy(out, flights)
	return out
}
