package catalog

const routeDate = "June 15, 2024"

var seedBuses = []BusRoute{
	{ID: "bus-1", Operator: "Greyhound", BusNumber: "GL-1234", BusType: "Standard",
		DepartureCity: "New York", ArrivalCity: "Boston", Date: routeDate,
		DepartureTime: "08:00", ArrivalTime: "12:30", DurationMin: 270,
		PriceCents: 4500, Rating: 4.2, AvailableSeats: 24, TotalSeats: 40,
		Amenities: []string{"WiFi", "USB Charging", "Air Conditioning"},
		Image:     "https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?auto=format&fit=crop&w=1769&q=80"},
	{ID: "bus-2", Operator: "Megabus", BusNumber: "MB-5678", BusType: "Standard",
		DepartureCity: "New York", ArrivalCity: "Boston", Date: routeDate,
		DepartureTime: "06:30", ArrivalTime: "11:15", DurationMin: 285,
		PriceCents: 2900, Rating: 3.9, AvailableSeats: 6, TotalSeats: 40,
		Amenities: []string{"WiFi", "USB Charging"}},
	{ID: "bus-3", Operator: "Peter Pan", BusNumber: "PP-2201", BusType: "Luxury",
		DepartureCity: "New York", ArrivalCity: "Boston", Date: routeDate,
		DepartureTime: "10:15", ArrivalTime: "14:25", DurationMin: 250,
		PriceCents: 6500, Rating: 4.7, AvailableSeats: 18, TotalSeats: 32,
		Amenities: []string{"WiFi", "USB Charging", "Air Conditioning", "Snacks", "Extra Legroom"}},
	{ID: "bus-4", Operator: "FlixBus", BusNumber: "FX-0917", BusType: "Standard",
		DepartureCity: "New York", ArrivalCity: "Boston", Date: routeDate,
		DepartureTime: "13:45", ArrivalTime: "18:20", DurationMin: 275,
		PriceCents: 3400, Rating: 4.1, AvailableSeats: 31, TotalSeats: 40,
		Amenities: []string{"WiFi", "Air Conditioning"}},
	{ID: "bus-5", Operator: "Night Owl Coaches", BusNumber: "NO-0042", BusType: "Sleeper",
		DepartureCity: "New York", ArrivalCity: "Boston", Date: routeDate,
		DepartureTime: "23:30", ArrivalTime: "05:00", DurationMin: 330,
		PriceCents: 8900, Rating: 4.5, AvailableSeats: 3, TotalSeats: 24,
		Amenities: []string{"WiFi", "Air Conditioning", "Blankets"}},
}

var seedTrains = []TrainRoute{
	{ID: "train-1", TrainName: "Acela", TrainNumber: "2150", TrainType: "High Speed",
		DepartureStation: "New York Penn Station", ArrivalStation: "Boston South Station", Date: routeDate,
		DepartureTime: "07:00", ArrivalTime: "10:45", DurationMin: 225, Rating: 4.8,
		Fares: map[TrainClass]Fare{
			ClassEconomy:  {PriceCents: 12900, Available: 42, Total: 120},
			ClassBusiness: {PriceCents: 19900, Available: 12, Total: 48},
			ClassFirst:    {PriceCents: 31900, Available: 4, Total: 24},
		},
		Stops:     []string{"Stamford", "New Haven", "Providence"},
		Amenities: []string{"WiFi", "Power Outlets", "Cafe Car", "Quiet Car"},
		Image:     "https://images.unsplash.com/photo-1474487548417-781cb71495f3?auto=format&fit=crop&w=1684&q=80"},
	{ID: "train-2", TrainName: "Northeast Regional", TrainNumber: "171", TrainType: "Regional",
		DepartureStation: "New York Penn Station", ArrivalStation: "Boston South Station", Date: routeDate,
		DepartureTime: "08:35", ArrivalTime: "12:55", DurationMin: 260, Rating: 4.1,
		Fares: map[TrainClass]Fare{
			ClassEconomy:  {PriceCents: 6900, Available: 88, Total: 160},
			ClassBusiness: {PriceCents: 11900, Available: 20, Total: 40},
			ClassFirst:    {PriceCents: 18900, Available: 9, Total: 16},
		},
		Stops:     []string{"Stamford", "Bridgeport", "New Haven", "New London", "Providence"},
		Amenities: []string{"WiFi", "Power Outlets", "Cafe Car"}},
	{ID: "train-3", TrainName: "Empire Express", TrainNumber: "405", TrainType: "Express",
		DepartureStation: "Grand Central Station", ArrivalStation: "Boston Back Bay", Date: routeDate,
		DepartureTime: "10:00", ArrivalTime: "14:00", DurationMin: 240, Rating: 4.4,
		Fares: map[TrainClass]Fare{
			ClassEconomy:  {PriceCents: 8900, Available: 64, Total: 140},
			ClassBusiness: {PriceCents: 14500, Available: 15, Total: 40},
			ClassFirst:    {PriceCents: 22900, Available: 7, Total: 20},
		},
		Stops:     []string{"New Haven", "Providence"},
		Amenities: []string{"WiFi", "Power Outlets", "Dining Car"}},
	{ID: "train-4", TrainName: "Shoreline", TrainNumber: "2290", TrainType: "Regional",
		DepartureStation: "New York Penn Station", ArrivalStation: "Boston South Station", Date: routeDate,
		DepartureTime: "12:20", ArrivalTime: "17:05", DurationMin: 285, Rating: 3.8,
		Fares: map[TrainClass]Fare{
			ClassEconomy:  {PriceCents: 5900, Available: 110, Total: 160},
			ClassBusiness: {PriceCents: 9900, Available: 30, Total: 40},
			ClassFirst:    {PriceCents: 15900, Available: 14, Total: 16},
		},
		Stops:     []string{"Stamford", "Bridgeport", "New Haven", "Old Saybrook", "New London", "Westerly", "Providence"},
		Amenities: []string{"Power Outlets"}},
	{ID: "train-5", TrainName: "Acela", TrainNumber: "2172", TrainType: "High Speed",
		DepartureStation: "New York Penn Station", ArrivalStation: "Boston South Station", Date: routeDate,
		DepartureTime: "17:00", ArrivalTime: "20:35", DurationMin: 215, Rating: 4.6,
		Fares: map[TrainClass]Fare{
			ClassEconomy:  {PriceCents: 14900, Available: 10, Total: 120},
			ClassBusiness: {PriceCents: 22900, Available: 5, Total: 48},
			ClassFirst:    {PriceCents: 34900, Available: 2, Total: 24},
		},
		Stops:     []string{"Stamford", "New Haven", "Providence"},
		Amenities: []string{"WiFi", "Power Outlets", "Cafe Car", "Meal Service"}},
}
