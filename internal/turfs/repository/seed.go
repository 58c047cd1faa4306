package repository

import "turfly/pkg/model"

// SeedManagers lists the manager accounts. Turfs pointing at any other
// manager id are only visible to admins.
func SeedManagers() []*model.Manager {
	return []*model.Manager{
		{ID: "2", Name: "Sarah Manager"},
	}
}

func SeedTurfs() []*model.Turf {
	return []*model.Turf{
		{
			ID:           "t1",
			Name:         "Mirpur Arena Turf",
			Location:     "Mirpur",
			Sport:        "Football",
			PricePerHour: 1200,
			Description:  "A spacious turf suitable for both 5-a-side Football and Cricket matches. Features excellent floodlights.",
			Amenities:    []string{"Parking", "Water", "Gallery"},
			ManagerID:    "2",
		},
		{
			ID:           "t2",
			Name:         "Dhanmondi Sports Hub",
			Location:     "Dhanmondi",
			Sport:        "Football",
			PricePerHour: 1800,
			Description:  "Premier training facility located in the heart of Dhanmondi. Ideal for professional training sessions.",
			Amenities:    []string{"Locker Room", "Showers", "Cafe"},
			ManagerID:    "2",
		},
		{
			ID:           "t3",
			Name:         "Banani Premier Turf",
			Location:     "Banani",
			Sport:        "Football",
			PricePerHour: 1600,
			Description:  "High-end turf with FIFA grade grass. Perfect for corporate tournaments and competitive cricket.",
			Amenities:    []string{"VIP Lounge", "Parking", "Pro Shop"},
			ManagerID:    "2",
		},
		{
			ID:           "t4",
			Name:         "Gulshan Elite Arena",
			Location:     "Gulshan",
			Sport:        "Football",
			PricePerHour: 2000,
			Description:  "Luxury sports arena for professional matches. Offers top-tier amenities and privacy.",
			Amenities:    []string{"AC Dugouts", "Live Screening", "Premium Showers"},
			ManagerID:    "99",
		},
		{
			ID:           "t5",
			Name:         "Motijheel Central Turf",
			Location:     "Motijheel",
			Sport:        "Football",
			PricePerHour: 2000,
			Description:  "Located in the business district, great for after-work cricket and football games.",
			Amenities:    []string{"Parking", "First Aid", "Refreshments"},
			ManagerID:    "2",
		},
		{
			ID:           "t6",
			Name:         "Shyamoli Play Zone",
			Location:     "Shyamoli",
			Sport:        "Football",
			PricePerHour: 1500,
			Description:  "A cozy but well-maintained turf focused on youth training and casual games.",
			Amenities:    []string{"Water", "Equipment Rental"},
			ManagerID:    "99",
		},
		{
			ID:           "t7",
			Name:         "Mohammadpur Turf Complex",
			Location:     "Mohammadpur",
			Sport:        "Football",
			PricePerHour: 1600,
			Description:  "Large complex supporting multiple sports. Popular for local cricket leagues.",
			Amenities:    []string{"Parking", "Prayer Room", "Water"},
			ManagerID:    "2",
		},
		{
			ID:           "t8",
			Name:         "Uttara North Arena",
			Location:     "Uttara",
			Sport:        "Football",
			PricePerHour: 1600,
			Description:  "Modern facility in Uttara Sector 4. Features a smooth surface ideal for fast-paced football.",
			Amenities:    []string{"Changing Rooms", "Food Court", "Wifi"},
			ManagerID:    "2",
		},
		{
			ID:           "t9",
			Name:         "Farmgate Sports Arena",
			Location:     "Farmgate",
			Sport:        "Football",
			PricePerHour: 1700,
			Description:  "Centrally located arena accessible from all parts of the city. Great for regular training.",
			Amenities:    []string{"Water", "Seating Area"},
			ManagerID:    "99",
		},
		{
			ID:           "t10",
			Name:         "Shahbag City Turf",
			Location:     "Shahbag",
			Sport:        "Football",
			PricePerHour: 1900,
			Description:  "Vibrant atmosphere near the university area. Excellent for student tournaments.",
			Amenities:    []string{"Student Discount", "Water", "Locker"},
			ManagerID:    "2",
		},
	}
}
