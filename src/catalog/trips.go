package catalog

var defaultContact = &Contact{
	Phone: "+91-9415026522",
	Email: "bhramanbyua@gmail.com",
}

// trips is the static catalog. Defined at build time, immutable at runtime.
var trips = []Trip{
	{
		ID:   tripID("Malvan Bhraman", 1),
		Name: "Malvan Escape — Bhraman",
		Price: Tiered(6899, map[PickupPoint]int64{
			PickupPune:   6399,
			PickupMumbai: 6899,
		}),
		Duration: "3N/2D",
		Summary:  "Sunrise at Chivla Beach, water adventures (scuba, parasailing, jet ski), Sindhudurg Fort, backwaters of Devbaug. Guided tour and Malvani meals.",
		Highlights: []string{
			"Deep-water scuba diving with video",
			"Parasailing & jet ski adventures",
			"Historic Sindhudurg Fort tour",
			"Backwater boat ride to Tsunami Island",
			"Authentic Malvani cuisine",
		},
		Itinerary: []ItineraryDay{
			{
				Day:   1,
				Title: "Depart Mumbai → Pune pickup → Overnight Journey",
				Schedule: []ScheduleItem{
					{Time: "17:00", Activity: "Assemble at Dadar TT — depart from Mumbai"},
					{Time: "22:00", Activity: "Pune pickup — continue overnight journey"},
				},
			},
			{
				Day:   2,
				Title: "Arrival | Water Adventures | Sunset Experience",
				Schedule: []ScheduleItem{
					{Time: "06:00", Activity: "Arrive Malvan, check-in, rest, unlimited breakfast"},
					{Time: "08:30", Activity: "Sunrise at Chivla Beach - gentle walk, silence circle, reflection"},
					{Time: "09:00", Activity: "Water adventures: deep-water scuba (with video), parasailing, jet ski, banana ride, bumper ride"},
					{Time: "13:30", Activity: "Unlimited Malvani lunch"},
					{Time: "15:30", Activity: "Rajkot Fort + Ganpati Mandir darshan"},
					{Time: "17:30", Activity: "Rock Garden sunset + musical water show"},
					{Time: "20:00", Activity: "Dinner followed by bonfire and bonding activities"},
				},
			},
			{
				Day:   3,
				Title: "Sindhudurg Fort | Devbaug | Backwaters | Departure",
				Schedule: []ScheduleItem{
					{Time: "07:00", Activity: "Unlimited breakfast"},
					{Time: "08:00", Activity: "Tarkarli & Devbaug beach — scenic walk, backwater boat ride, Tsunami Island & Sangam Point, (kayaking if available), Seagull island, lighthouse, dolphin point"},
					{Time: "14:00", Activity: "Unlimited lunch"},
					{Time: "16:00", Activity: "Ferry ride to Sindhudurg Fort — sightseeing"},
					{Time: "19:00", Activity: "Depart Malvan — dinner en route (not included)"},
					{Time: "04:00", Activity: "Pune drop-off (~04:00–04:30)"},
					{Time: "07:00", Activity: "Arrive Mumbai (~07:00–07:30) — closing group circle"},
				},
			},
		},
		Inclusions: []string{
			"Non-AC tempo traveler bus",
			"Accommodation on triple sharing basis",
			"Meals: 4 Malvani meals (2 breakfasts, 2 lunches)",
			"Guided tour",
			"Water sports package: jet ski, banana ride, bumper ride, scuba diving, parasailing",
			"Entry fees and ferry rides (Sindhudurg, Tsunami Island & Sangam Point)",
			"First aid support",
		},
		Exclusions: []string{
			"Dinner (unless specified)",
			"Travel till pickup point",
			"Beverages & snacks not mentioned",
			"Additional repeated sport activity costs",
			"Medical / emergency evacuation",
		},
		Booking: &BookingInfo{
			Advance:        2000,
			PaymentMethods: []string{"Bank Transfer", "UPI", "QR/WhatsApp"},
			Bank: &BankAccount{
				Name:          "UTKARSH KARTIKA PRASAD VERMA",
				AccountNumber: "188433676328",
				IFSC:          "INDB0000430",
			},
			UPI: "8433676328@INDIE",
		},
		Cancellation: map[string]string{
			">=8_days_before":    "75% refund (processed in 5-7 working days)",
			"4_to_7_days_before": "50% refund",
			"<=3_days_before":    "No refund",
			"no_show":            "No refund",
		},
		Locations: []string{"Chivla Beach", "Sindhudurg Fort", "Tarkarli", "Devbaug", "Tsunami Island", "Sangam Point"},
		Images: []string{
			"https://images.unsplash.com/photo-1507525428034-b723cf961d3e?w=800&q=80",
			"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&q=80",
			"https://images.unsplash.com/photo-1559494007-9f5847c49d94?w=800&q=80",
		},
		IsActive: true,
		Capacity: 40,
		Contact:  defaultContact,
		Notes:    "Items marked with * in the brochure are not included in package.",
	},
	{
		ID:       tripID("Konkan Weekend Alibaug", 2),
		Name:     "Konkan Weekend Escape — Alibaug & Mandwa",
		Price:    Scalar(5499),
		Duration: "2D/1N",
		Summary:  "Ferry ride, beach time, forts, seafood evening. Perfect weekend getaway from Mumbai.",
		Highlights: []string{
			"Scenic ferry ride from Gateway of India",
			"Alibaug beach exploration",
			"Kolaba Fort visit",
			"Fresh seafood dinner",
		},
		Images:         []string{"https://images.unsplash.com/photo-1590523741831-ab7e8b8f9c7f?w=800&q=80"},
		IsActive:       true,
		AvailableDates: []string{"2025-01-18", "2025-02-15", "2025-03-15"},
		Locations:      []string{"Alibaug", "Mandwa", "Kolaba Fort"},
		Contact:        defaultContact,
	},
	{
		ID:       tripID("Ratnagiri Beaches", 3),
		Name:     "Ratnagiri Beaches & Sunset Forts",
		Price:    Scalar(9999),
		Duration: "3D/2N",
		Summary:  "Ganpatipule, Jaigad Fort, beach camping. Experience the pristine beauty of Ratnagiri coast.",
		Highlights: []string{
			"Ganpatipule Temple & Beach",
			"Jaigad Fort sunset views",
			"Beach camping under stars",
			"Local Konkani cuisine",
		},
		Images:    []string{"https://images.unsplash.com/photo-1468413253725-0d5181091126?w=800&q=80"},
		IsActive:  true,
		Locations: []string{"Ganpatipule", "Jaigad Fort", "Ratnagiri Beach"},
		Contact:   defaultContact,
	},
	{
		ID:       tripID("Sindhudurg Tarkarli", 4),
		Name:     "Sindhudurg Fort & Tarkarli Water Sports",
		Price:    Scalar(18999),
		Duration: "4D/3N",
		Summary:  "Scuba, snorkeling, Sindhudurg fort tour, Devbaug backwaters. The ultimate Konkan water adventure.",
		Highlights: []string{
			"Professional scuba diving",
			"Snorkeling in crystal waters",
			"Sindhudurg Fort exploration",
			"Devbaug backwater cruise",
		},
		Images:    []string{"https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&q=80"},
		IsActive:  true,
		Locations: []string{"Sindhudurg Fort", "Tarkarli", "Devbaug"},
		Contact:   defaultContact,
	},
	{
		ID:       tripID("Murud Janjira", 5),
		Name:     "Murud-Janjira & Kulaba Fort",
		Price:    Scalar(6999),
		Duration: "2D/1N",
		Summary:  "Historic fort visits, coastal walks. Discover the unconquered sea fortress.",
		Highlights: []string{
			"Janjira Fort - the unconquered",
			"Kulaba Fort exploration",
			"Murud beach sunset",
			"Historic tales & legends",
		},
		Images:    []string{"https://images.unsplash.com/photo-1596402184320-417e7178b2cd?w=800&q=80"},
		IsActive:  true,
		Locations: []string{"Murud", "Janjira Fort", "Kulaba Fort"},
		Contact:   defaultContact,
	},
	{
		ID:       tripID("Guhagar Devgad", 6),
		Name:     "Guhagar & Devgad Mango Trails",
		Price:    Scalar(8499),
		Duration: "3D/2N",
		Summary:  "Village walks, orchards (seasonal), coastal trails. Experience authentic Konkan village life.",
		Highlights: []string{
			"Famous Devgad mango orchards",
			"Pristine Guhagar beach",
			"Village homestay experience",
			"Coastal trail walks",
		},
		Images:    []string{"https://images.unsplash.com/photo-1519046904884-53103b34b206?w=800&q=80"},
		IsActive:  true,
		Locations: []string{"Guhagar", "Devgad", "Velneshwar"},
		Contact:   defaultContact,
	},
	{
		ID:       tripID("Coastal Drive Mumbai Goa", 7),
		Name:     "Konkan Coastal Road Trip (Mumbai → Goa)",
		Price:    Scalar(24999),
		Duration: "5D/4N",
		Summary:  "Scenic coastal drive with stops, forts, beaches and seafood. The ultimate Konkan experience.",
		Highlights: []string{
			"500+ km scenic coastal drive",
			"Multiple fort visits",
			"Beach hopping",
			"Best of Konkan seafood",
		},
		Images:    []string{"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&q=80"},
		IsActive:  true,
		Locations: []string{"Mumbai", "Alibaug", "Murud", "Ratnagiri", "Malvan", "Goa"},
		Contact:   defaultContact,
	},
}
