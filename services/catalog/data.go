package catalog

import "capetown/models"

// Reference data for the Cape Town listings. Prices are ZAR.

var hotels = []models.CatalogItem{
	{
		ID: "h1", Name: "The Table Bay Hotel", Type: "hotel", Category: "luxury",
		Area: "V&A Waterfront", Rating: 4.8, Reviews: 2340, PricePerNight: 4500,
		Amenities:   []string{"WiFi", "Pool", "Spa", "Gym", "Parking", "Restaurant"},
		Description: "Iconic 5-star hotel with waterfront views and world-class amenities",
		Features:    []string{"Beachfront", "City View", "Pet Friendly"},
		Phone:       "+27 21 406 5000", Email: "info@tablebay.co.za",
	},
	{
		ID: "h2", Name: "Cape Grace Hotel", Type: "hotel", Category: "luxury",
		Area: "V&A Waterfront", Rating: 4.9, Reviews: 1876, PricePerNight: 5200,
		Amenities:   []string{"WiFi", "Pool", "Spa", "Concierge", "Room Service"},
		Description: "Elegant boutique hotel with personalized service and stunning views",
		Features:    []string{"Waterfront Views", "Luxury", "Mountain View"},
		Phone:       "+27 21 410 7100", Email: "info@capegrace.com",
	},
	{
		ID: "h3", Name: "POD Camps Bay", Type: "hotel", Category: "midrange",
		Area: "Camps Bay", Rating: 4.6, Reviews: 987, PricePerNight: 2200,
		Amenities:   []string{"WiFi", "Pool", "Beach Access", "Breakfast"},
		Description: "Trendy boutique hotel steps from the beach with mountain backdrop",
		Features:    []string{"Beach Access", "Mountain View", "Modern"},
		Phone:       "+27 21 437 9000", Email: "stay@podhotels.com",
	},
	{
		ID: "h4", Name: "Dock House Boutique Hotel", Type: "guesthouse", Category: "midrange",
		Area: "V&A Waterfront", Rating: 4.7, Reviews: 654, PricePerNight: 1800,
		Amenities:   []string{"WiFi", "Breakfast", "Concierge", "Parking"},
		Description: "Charming boutique hotel with personalized service",
		Features:    []string{"Boutique", "Central Location"},
		Phone:       "+27 21 421 1234", Email: "info@dockhouse.co.za",
	},
	{
		ID: "h5", Name: "Cape Town Backpackers", Type: "hostel", Category: "budget",
		Area: "City Bowl", Rating: 4.3, Reviews: 1234, PricePerNight: 450,
		Amenities:   []string{"WiFi", "Kitchen", "Social Areas", "Tours"},
		Description: "Budget-friendly hostel with vibrant social atmosphere",
		Features:    []string{"Budget", "Social", "Central"},
		Phone:       "+27 21 423 4530", Email: "info@ctbackpackers.com",
	},
	{
		ID: "h6", Name: "Sea Point Studio", Type: "vacation rental", Category: "budget",
		Area: "Sea Point", Rating: 4.5, Reviews: 432, PricePerNight: 850,
		Amenities:   []string{"WiFi", "Kitchen", "Washing Machine", "Self Check-in"},
		Description: "Cozy studio apartment with ocean views and self-catering facilities",
		Features:    []string{"Self-Catering", "Ocean View", "Affordable"},
	},
}

var restaurants = []models.CatalogItem{
	{
		ID: "r1", Name: "The Test Kitchen", Type: "restaurant", Cuisine: "Fine Dining",
		Area: "Woodstock", Rating: 4.9, Reviews: 2876, PriceRange: "expensive", AvgPrice: 950,
		Features:    []string{"Fine Dining", "Chef's Table", "Wine Pairing"},
		Description: "Award-winning restaurant with innovative tasting menus",
		Dietary:     []string{"Vegetarian Options", "Gluten-Free"},
		Phone:       "+27 21 447 2337", Email: "info@thetestkitchen.co.za",
		Hours:       "Tue-Sat: 6:00 PM - 10:00 PM",
	},
	{
		ID: "r2", Name: "La Colombe", Type: "restaurant", Cuisine: "French",
		Area: "Constantia", Rating: 4.8, Reviews: 1987, PriceRange: "expensive", AvgPrice: 850,
		Features:    []string{"Mountain Views", "Wine Estate", "Romantic"},
		Description: "French-Asian fusion in a stunning vineyard setting",
		Dietary:     []string{"Vegetarian", "Vegan Options"},
		Phone:       "+27 21 794 2390", Email: "info@lacolombe.co.za",
		Hours:       "Daily: 12:00 PM - 9:00 PM",
	},
	{
		ID: "r3", Name: "Gold Restaurant", Type: "restaurant", Cuisine: "South African",
		Area: "Green Point", Rating: 4.7, Reviews: 3421, PriceRange: "moderate", AvgPrice: 550,
		Features:    []string{"Live Music", "Cultural Experience", "Traditional"},
		Description: "Authentic African cuisine with live entertainment",
		Dietary:     []string{"Halal", "Vegetarian"},
		Phone:       "+27 21 421 4653", Email: "info@goldrestaurant.co.za",
		Hours:       "Daily: 6:30 PM - 10:30 PM",
	},
	{
		ID: "r4", Name: "Harbour House", Type: "restaurant", Cuisine: "Seafood",
		Area: "V&A Waterfront", Rating: 4.6, Reviews: 2145, PriceRange: "moderate", AvgPrice: 420,
		Features:    []string{"Waterfront Views", "Fresh Seafood", "Outdoor Seating"},
		Description: "Fresh seafood with spectacular harbor views",
		Dietary:     []string{"Gluten-Free Options"},
		Phone:       "+27 21 418 4744", Email: "info@harbourhouse.co.za",
		Hours:       "Daily: 12:00 PM - 10:00 PM",
	},
}

var attractions = []models.CatalogItem{
	{
		ID: "a1", Name: "Table Mountain Aerial Cableway", Type: "attraction", Category: "nature",
		Area: "Table Mountain", Rating: 4.8, Reviews: 15420, PriceRange: "midrange",
		Description: "Rotating cable car to the summit with panoramic city and ocean views",
	},
	{
		ID: "a2", Name: "Robben Island Museum", Type: "attraction", Category: "history",
		Area: "Table Bay", Rating: 4.6, Reviews: 8930, PriceRange: "midrange",
		Description: "UNESCO World Heritage site and former prison of Nelson Mandela",
	},
	{
		ID: "a3", Name: "Kirstenbosch National Botanical Garden", Type: "attraction", Category: "nature",
		Area: "Newlands", Rating: 4.9, Reviews: 12050, PriceRange: "budget",
		Description: "World-renowned gardens on the eastern slopes of Table Mountain",
	},
	{
		ID: "a4", Name: "V&A Waterfront", Type: "attraction", Category: "shopping",
		Area: "V&A Waterfront", Rating: 4.7, Reviews: 22340, PriceRange: "free",
		Description: "Working harbour with shops, restaurants and the Two Oceans Aquarium",
	},
	{
		ID: "a5", Name: "Boulders Beach Penguin Colony", Type: "attraction", Category: "nature",
		Area: "Simon's Town", Rating: 4.7, Reviews: 9870, PriceRange: "budget",
		Description: "Sheltered beach home to a colony of African penguins",
	},
	{
		ID: "a6", Name: "Cape Point Nature Reserve", Type: "attraction", Category: "nature",
		Area: "Cape Peninsula", Rating: 4.8, Reviews: 11230, PriceRange: "midrange",
		Description: "Dramatic cliffs and lighthouses at the tip of the Cape Peninsula",
	},
}
