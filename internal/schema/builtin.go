package schema

// Default returns the built-in resort offer-sheet catalog. The registry
// mechanism is schema-agnostic; these six entries are the shipped
// configuration, overridable via LoadFile.
func Default() *Registry {
	r, err := NewRegistry(builtinSchemas())
	if err != nil {
		// builtin catalog is validated by tests; a failure here is a
		// programming error, not a runtime condition
		panic(err)
	}
	return r
}

func builtinSchemas() []ArtifactSchema {
	return []ArtifactSchema{
		{
			Name: "Resort_Details",
			Headers: []string{
				"Resort Name", "Resort Legal Name", "Atoll", "Star Category", "Offer Type",
				"Resort Category", "Board Type", "Marketplace", "Booking Period - From",
				"Booking Period - To", "Age Definition", "Teenage From Age", "Child From Age",
				"Early Check-In Cost", "Late Check-Out Cost", "Resort Details (Intro)",
				"Resort Terms and Conditions", "Resort Cancellation Policy",
				"Other Additional Information",
			},
			Instructions: `Extract resort information. Rules:
- Resort Name: ALL CAPS, append '- PACKAGE' if it's a package document
- Resort Legal Name: CamelCase format
- Board Type: Select lowest meal board type (B/B, H/B, F/B, etc.) or 'Not specified'
- Resort Category: Island Resort / City Hotel / Guest House
- Marketplace: Target countries/regions (Middle East, Europe, Asia, etc.)
- Dates: DD/MM/YYYY format
- Early/Late costs: 0 if not specified
- Descriptions: Max 3000 characters, extract exactly as written`,
		},
		{
			Name: "Villas_Rooms",
			Headers: []string{
				"Resort Name", "Room Type", "No of Rooms / Villas", "Room / Villa Category",
				"Basic Occupancy Count: Adult", "Basic Occupancy Count: Teenage",
				"Basic Occupancy Count: Child", "Maximum Occupancy (Including Basic)",
				"Room Size (sqm)", "Minimum Stay (Nights)", "Bed Type", "Bed Count",
				"Room / Villa Description", "Facilities Provided", "Room Terms and Conditions",
			},
			Instructions: `Extract room/villa details. Rules:
- Create one row per room/villa type mentioned
- Extract exactly as written from documents
- Basic Occupancy: Standard occupancy numbers
- Maximum Occupancy: Including extra persons
- If information missing, use 'Not specified'`,
		},
		{
			Name: "Meal_Plans",
			Headers: []string{
				"Resort Name", "Meal Plan", "Cost for Adult", "Cost for Child",
				"Meal Plan Inclusion Details", "If Included in a Package",
			},
			Instructions: `Extract meal plan information. Rules:
- Create one row per meal plan (Half Board, Full Board, etc.)
- Extract costs exactly as stated
- Include detailed descriptions of what's included in meals
- Mention package names if applicable or 'Not included'`,
		},
		{
			Name: "Transfers",
			Headers: []string{
				"Resort Name", "Transfer Name", "Transfer Type", "Valid Travel - From",
				"Valid Travel - To", "Transfer Cost: Adult", "Transfer Cost: Child",
				"Included in Package(s)", "Transfer Terms and Conditions",
			},
			Instructions: `Extract transfer details. Rules:
- Create one row per transfer type
- Transfer Type: Shared Seaplane, Private Luxury Yacht, Domestic Flight + Speedboat, etc.
- Extract costs exactly as stated
- List package names where transfers are included or 'Not included'
- Include terms and conditions for transfers`,
		},
		{
			Name: "Packages",
			Headers: []string{
				"Resort Name", "Package Name", "Package Inclusion", "Apply Countries",
				"Package Period - From", "Package Period - To", "Booking Period - From",
				"Booking Period - To", "Blackout Periods", "Villa / Room Type",
				"Stay Duration (Nights)", "Basic Occupancy Count: Adult",
				"Basic Occupancy Count: Teenage", "Basic Occupancy Count: Child",
				"Maximum Occupancy (Including Basic)", "Meal Plan", "Transfer",
				"Package Cost", "Package Value", "Extra Person Rate per Night: Adult",
				"Extra Person Rate per Night: Teenage", "Extra Person Rate per Night: Child",
			},
			Instructions: `Extract package details. CRITICAL:
- Create separate rows for EACH combination of room type x season x transfer type
- Extract ALL package combinations from rate tables
- Package Cost: State exact price from tables
- Package Inclusion: Include ALL benefits (floating breakfast, shisha, activities, etc.)
- Dates: DD/MM/YYYY format
- Include ALL benefits and inclusions mentioned
- Honeymoon/Anniversary/Birthday benefits only if in package documents`,
		},
		{
			Name: "Room_Rates",
			Headers: []string{
				"Resort Name", "Ban Countries", "Room Type", "Rate Period - From",
				"Rate Period - To", "Rate Based On", "Room Rate",
				"Extra Person Rate: Adult", "Extra Person Rate: Teenage",
				"Extra Person Rate: Child",
			},
			Instructions: `Extract room rates. Rules:
- Create one row per rate entry per room type
- Rate Based On: Per Room Per Night / Per Person Per Day
- Extract all seasonal rates (Low Season, Shoulder Season, Peak Season)
- Include any country restrictions or bans
- Dates: DD/MM/YYYY format`,
		},
	}
}
