package catalog

import "github.com/iliyamo/seat-booking/internal/model"

var seedEvents = []model.Event{
	{ID: "event-1", Name: "Avengers: Endgame", Date: "June 15, 2024", Time: "7:30 PM", Venue: "AMC Theaters", Type: model.EventCinema,
		Image: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?auto=format&fit=crop&w=1740&q=80"},
	{ID: "event-2", Name: "NBA Finals: Lakers vs Celtics", Date: "June 18, 2024", Time: "8:00 PM", Venue: "Staples Center", Type: model.EventGeneral,
		Image: "https://images.unsplash.com/photo-1504450758481-7338eba7524a?auto=format&fit=crop&w=1769&q=80"},
	{ID: "event-3", Name: "Taylor Swift: The Eras Tour", Date: "July 5, 2024", Time: "6:00 PM", Venue: "Madison Square Garden", Type: model.EventGeneral,
		Image: "https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?auto=format&fit=crop&w=1770&q=80"},
	{ID: "event-4", Name: "Express Train to Boston", Date: "July 22, 2024", Time: "10:00 AM", Venue: "Grand Central Station", Type: model.EventTrain,
		Image: "https://images.unsplash.com/photo-1474487548417-781cb71495f3?auto=format&fit=crop&w=1684&q=80"},
	{ID: "event-5", Name: "Dune: Part Two", Date: "June 25, 2024", Time: "9:00 PM", Venue: "IMAX Theater", Type: model.EventCinema,
		Image: "https://images.unsplash.com/photo-1596727147705-61a532a659bd?auto=format&fit=crop&w=1770&q=80"},
	{ID: "event-6", Name: "Luxury Bus to Las Vegas", Date: "August 10, 2024", Time: "8:30 AM", Venue: "Central Bus Terminal", Type: model.EventBus,
		Image: "https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?auto=format&fit=crop&w=1769&q=80"},
	{ID: "event-7", Name: "Overnight Train to Chicago", Date: "July 15, 2024", Time: "9:00 PM", Venue: "Union Station", Type: model.EventTrain,
		Image: "/images/overnight-train.jpeg"},
	{ID: "event-8", Name: "Express Bus to Washington DC", Date: "August 5, 2024", Time: "7:00 AM", Venue: "Port Authority", Type: model.EventBus,
		Image: "https://images.unsplash.com/photo-1570125909232-eb263c188f7e?auto=format&fit=crop&w=1770&q=80"},
	{ID: "event-9", Name: "Oppenheimer", Date: "July 1, 2024", Time: "8:00 PM", Venue: "Regal Cinemas", Type: model.EventCinema,
		Image: "https://images.unsplash.com/photo-1517604931442-7e0c8ed2963c?auto=format&fit=crop&w=1770&q=80"},
	{ID: "event-10", Name: "High-Speed Train to Philadelphia", Date: "June 30, 2024", Time: "11:30 AM", Venue: "Penn Station", Type: model.EventTrain,
		Image: "/images/high-speed-train.jpeg"},
	{ID: "event-11", Name: "Premium Bus to Atlantic City", Date: "July 8, 2024", Time: "9:00 AM", Venue: "Port Authority", Type: model.EventBus,
		Image: "https://images.unsplash.com/photo-1464219789935-c2d9d9aba644?auto=format&fit=crop&w=1770&q=80"},
	{ID: "event-12", Name: "Coldplay World Tour", Date: "August 15, 2024", Time: "7:00 PM", Venue: "MetLife Stadium", Type: model.EventGeneral,
		Image: "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?auto=format&fit=crop&w=1770&q=80"},
}
