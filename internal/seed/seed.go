// Package seed holds the canned WAKENS catalog. The same dataset backs the
// in-memory demo repositories and the initial database seeding, so the demo
// behaves identically with and without a live Postgres.
package seed

import (
	hotelModel "wakens/internal/domains/hotel/model"
	roomModel "wakens/internal/domains/room/model"

	"github.com/lib/pq"
)

func Hotels() []hotelModel.Hotel {
	return []hotelModel.Hotel{
		{
			ID:          "h-emerald-court",
			Name:        "The Emerald Court",
			Location:    "Erode, Tamil Nadu",
			Rating:      4.8,
			Price:       1800,
			EcoScore:    92,
			AirQuality:  88,
			Description: "Solar-powered boutique stay wrapped around a banyan courtyard, minutes from the Kaveri riverfront.",
			Facilities:  pq.StringArray{"Solar power", "Organic kitchen", "EV charging", "Rainwater harvesting"},
			Image:       "/images/hotels/emerald-court.jpg",
		},
		{
			ID:          "h-azure-bay",
			Name:        "Azure Bay Resort",
			Location:    "Erode, Tamil Nadu",
			Rating:      4.6,
			Price:       2400,
			EcoScore:    85,
			AirQuality:  90,
			Description: "Lakeside resort with floating breakfast decks and sensor-monitored air quality in every suite.",
			Facilities:  pq.StringArray{"Infinity pool", "Spa", "Lake deck", "Air purifiers"},
			Image:       "/images/hotels/azure-bay.jpg",
		},
		{
			ID:          "h-teak-house",
			Name:        "Teak House Heritage",
			Location:    "Erode, Tamil Nadu",
			Rating:      4.4,
			Price:       1500,
			EcoScore:    78,
			AirQuality:  82,
			Description: "Restored 1920s timber mansion with verandah rooms and a courtyard restaurant serving millet thalis.",
			Facilities:  pq.StringArray{"Heritage tours", "Courtyard dining", "Library", "Bicycle rental"},
			Image:       "/images/hotels/teak-house.jpg",
		},
		{
			ID:          "h-verdant-hills",
			Name:        "Verdant Hills Retreat",
			Location:    "Erode, Tamil Nadu",
			Rating:      4.9,
			Price:       3200,
			EcoScore:    95,
			AirQuality:  93,
			Description: "Hilltop eco retreat above the Bhavani valley, carbon-neutral since opening and fully farm-to-table.",
			Facilities:  pq.StringArray{"Carbon neutral", "Farm-to-table", "Yoga pavilion", "Nature trails"},
			Image:       "/images/hotels/verdant-hills.jpg",
		},
		{
			ID:          "h-cotton-mill",
			Name:        "Cotton Mill Lofts",
			Location:    "Erode, Tamil Nadu",
			Rating:      4.2,
			Price:       1200,
			EcoScore:    70,
			AirQuality:  75,
			Description: "Industrial-chic lofts in a converted spinning mill near the textile market, built for work trips.",
			Facilities:  pq.StringArray{"Co-working", "Gym", "Rooftop cafe", "Laundry"},
			Image:       "/images/hotels/cotton-mill.jpg",
		},
		{
			ID:          "h-riverbend",
			Name:        "Riverbend Sanctuary",
			Location:    "Erode, Tamil Nadu",
			Rating:      4.7,
			Price:       2800,
			EcoScore:    90,
			AirQuality:  86,
			Description: "Bird-rich riverside sanctuary stay with stilted cottages and live water quality readouts at the jetty.",
			Facilities:  pq.StringArray{"Bird watching", "Kayaking", "Stilted cottages", "Water monitoring"},
			Image:       "/images/hotels/riverbend.jpg",
		},
	}
}

func Rooms() []roomModel.Room {
	return []roomModel.Room{
		{ID: "r-emerald-101", HotelID: "h-emerald-court", Name: "Banyan View Room", Size: "28 sqm", Beds: 1, Price: 1800, Image: "/images/rooms/emerald-101.jpg"},
		{ID: "r-emerald-102", HotelID: "h-emerald-court", Name: "Canopy Suite", Size: "42 sqm", Beds: 2, Price: 2600, Image: "/images/rooms/emerald-102.jpg"},
		{ID: "r-azure-201", HotelID: "h-azure-bay", Name: "Lakefront Deluxe", Size: "34 sqm", Beds: 1, Price: 2400, Image: "/images/rooms/azure-201.jpg"},
		{ID: "r-azure-202", HotelID: "h-azure-bay", Name: "Floating Deck Suite", Size: "50 sqm", Beds: 2, Price: 3400, Image: "/images/rooms/azure-202.jpg"},
		{ID: "r-teak-301", HotelID: "h-teak-house", Name: "Verandah Room", Size: "30 sqm", Beds: 1, Price: 1500, Image: "/images/rooms/teak-301.jpg"},
		{ID: "r-teak-302", HotelID: "h-teak-house", Name: "Planter's Family Room", Size: "46 sqm", Beds: 3, Price: 2200, Image: "/images/rooms/teak-302.jpg"},
		{ID: "r-verdant-401", HotelID: "h-verdant-hills", Name: "Valley View Cottage", Size: "38 sqm", Beds: 1, Price: 3200, Image: "/images/rooms/verdant-401.jpg"},
		{ID: "r-verdant-402", HotelID: "h-verdant-hills", Name: "Summit Villa", Size: "64 sqm", Beds: 2, Price: 4800, Image: "/images/rooms/verdant-402.jpg"},
		{ID: "r-cotton-501", HotelID: "h-cotton-mill", Name: "Loft Studio", Size: "26 sqm", Beds: 1, Price: 1200, Image: "/images/rooms/cotton-501.jpg"},
		{ID: "r-cotton-502", HotelID: "h-cotton-mill", Name: "Mill Corner Loft", Size: "36 sqm", Beds: 2, Price: 1700, Image: "/images/rooms/cotton-502.jpg"},
		{ID: "r-riverbend-601", HotelID: "h-riverbend", Name: "Stilted Cottage", Size: "32 sqm", Beds: 1, Price: 2800, Image: "/images/rooms/riverbend-601.jpg"},
		{ID: "r-riverbend-602", HotelID: "h-riverbend", Name: "Heron Suite", Size: "48 sqm", Beds: 2, Price: 3900, Image: "/images/rooms/riverbend-602.jpg"},
	}
}

func Reviews() []hotelModel.Review {
	return []hotelModel.Review{
		{ID: "rv-1", HotelID: "h-emerald-court", Author: "Priya N.", Rating: 5, Body: "The courtyard is magical in the evenings and the air genuinely feels cleaner than anywhere else in town."},
		{ID: "rv-2", HotelID: "h-emerald-court", Author: "Daniel K.", Rating: 4.5, Body: "Loved the live room metrics. Breakfast from the organic kitchen was the highlight."},
		{ID: "rv-3", HotelID: "h-azure-bay", Author: "Meera S.", Rating: 4.5, Body: "Floating breakfast on the lake deck is worth the trip alone."},
		{ID: "rv-4", HotelID: "h-azure-bay", Author: "Arjun T.", Rating: 4, Body: "Rooms are spotless and the air purifier data on the dashboard is a nice touch."},
		{ID: "rv-5", HotelID: "h-teak-house", Author: "Lena F.", Rating: 4.5, Body: "Sleeping in a century-old teak room is an experience. Wi-Fi could be faster."},
		{ID: "rv-6", HotelID: "h-verdant-hills", Author: "Rohan M.", Rating: 5, Body: "Best air quality readings I have seen on the platform, and the valley sunrise backs it up."},
		{ID: "rv-7", HotelID: "h-verdant-hills", Author: "Sofia A.", Rating: 5, Body: "Carbon-neutral without compromise. The yoga pavilion at dawn is unforgettable."},
		{ID: "rv-8", HotelID: "h-cotton-mill", Author: "Vikram P.", Rating: 4, Body: "Perfect for a work week. Desk setup in the loft is better than most offices."},
		{ID: "rv-9", HotelID: "h-riverbend", Author: "Anita R.", Rating: 5, Body: "Woke up to herons outside the cottage. The jetty water readouts are fascinating."},
		{ID: "rv-10", HotelID: "h-riverbend", Author: "James W.", Rating: 4.5, Body: "Kayaking at dusk and live sensor gauges in the room. A strange and wonderful mix."},
	}
}

func Metrics() []roomModel.Metric {
	return []roomModel.Metric{
		{RoomID: "r-emerald-101", EcoScore: 92, Noise: 32, PM25: 8.2, PM10: 14.1, SOx: 2.1, NOx: 6.3, VOC: 0.12, CO: 0.4, CO2: 420, AQI: 38, TDS: 142, Turbidity: 0.6, PH: 7.2, DissolvedOxygen: 8.1, Temperature: 24.5, Humidity: 52},
		{RoomID: "r-emerald-102", EcoScore: 93, Noise: 29, PM25: 7.4, PM10: 12.8, SOx: 1.9, NOx: 5.7, VOC: 0.1, CO: 0.3, CO2: 410, AQI: 35, TDS: 138, Turbidity: 0.5, PH: 7.3, DissolvedOxygen: 8.3, Temperature: 24.1, Humidity: 50},
		{RoomID: "r-azure-201", EcoScore: 86, Noise: 35, PM25: 10.5, PM10: 18.2, SOx: 2.8, NOx: 8.1, VOC: 0.16, CO: 0.5, CO2: 450, AQI: 44, TDS: 156, Turbidity: 0.8, PH: 7.1, DissolvedOxygen: 7.8, Temperature: 25.2, Humidity: 58},
		{RoomID: "r-azure-202", EcoScore: 88, Noise: 31, PM25: 9.1, PM10: 16, SOx: 2.4, NOx: 7.2, VOC: 0.14, CO: 0.4, CO2: 435, AQI: 41, TDS: 150, Turbidity: 0.7, PH: 7.2, DissolvedOxygen: 7.9, Temperature: 24.8, Humidity: 56},
		{RoomID: "r-teak-301", EcoScore: 78, Noise: 41, PM25: 14.6, PM10: 24.3, SOx: 3.6, NOx: 11.4, VOC: 0.22, CO: 0.7, CO2: 495, AQI: 56, TDS: 172, Turbidity: 1.1, PH: 6.9, DissolvedOxygen: 7.2, Temperature: 26, Humidity: 61},
		{RoomID: "r-teak-302", EcoScore: 77, Noise: 43, PM25: 15.2, PM10: 25.8, SOx: 3.8, NOx: 12, VOC: 0.24, CO: 0.8, CO2: 505, AQI: 58, TDS: 175, Turbidity: 1.2, PH: 6.9, DissolvedOxygen: 7.1, Temperature: 26.2, Humidity: 62},
		{RoomID: "r-verdant-401", EcoScore: 96, Noise: 24, PM25: 4.8, PM10: 9.2, SOx: 1.2, NOx: 3.6, VOC: 0.07, CO: 0.2, CO2: 390, AQI: 26, TDS: 118, Turbidity: 0.3, PH: 7.4, DissolvedOxygen: 8.8, Temperature: 22.8, Humidity: 48},
		{RoomID: "r-verdant-402", EcoScore: 95, Noise: 25, PM25: 5.1, PM10: 9.8, SOx: 1.3, NOx: 3.9, VOC: 0.08, CO: 0.2, CO2: 395, AQI: 28, TDS: 121, Turbidity: 0.3, PH: 7.4, DissolvedOxygen: 8.7, Temperature: 23, Humidity: 49},
		{RoomID: "r-cotton-501", EcoScore: 70, Noise: 48, PM25: 18.9, PM10: 31.5, SOx: 4.5, NOx: 15.2, VOC: 0.31, CO: 1, CO2: 540, AQI: 66, TDS: 190, Turbidity: 1.5, PH: 6.8, DissolvedOxygen: 6.8, Temperature: 27.1, Humidity: 64},
		{RoomID: "r-cotton-502", EcoScore: 71, Noise: 46, PM25: 18.1, PM10: 30.2, SOx: 4.3, NOx: 14.6, VOC: 0.29, CO: 0.9, CO2: 530, AQI: 64, TDS: 186, Turbidity: 1.4, PH: 6.8, DissolvedOxygen: 6.9, Temperature: 26.9, Humidity: 63},
		{RoomID: "r-riverbend-601", EcoScore: 90, Noise: 27, PM25: 7.9, PM10: 13.5, SOx: 2, NOx: 6, VOC: 0.11, CO: 0.3, CO2: 415, AQI: 37, TDS: 132, Turbidity: 0.5, PH: 7.3, DissolvedOxygen: 8.4, Temperature: 24.2, Humidity: 54},
		{RoomID: "r-riverbend-602", EcoScore: 91, Noise: 26, PM25: 7.5, PM10: 13, SOx: 1.9, NOx: 5.8, VOC: 0.1, CO: 0.3, CO2: 412, AQI: 36, TDS: 130, Turbidity: 0.5, PH: 7.3, DissolvedOxygen: 8.5, Temperature: 24, Humidity: 53},
	}
}

// RoomIDs feeds the demo sensor simulator so every room in the catalog
// reports readings.
func RoomIDs() []string {
	rooms := Rooms()
	ids := make([]string, len(rooms))

	for i, room := range rooms {
		ids[i] = room.ID
	}

	return ids
}
