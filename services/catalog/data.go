package catalog

import "barbershop/models"

var defaultServices = []models.Service{
	{ID: "classic", Name: "Classic Cut", Duration: 30, Price: 25, Description: "Timeless scissor cut with detailed finish."},
	{ID: "fade", Name: "Skin Fade", Duration: 45, Price: 35, Description: "Clean fade with razor finish."},
	{ID: "beard", Name: "Beard Trim", Duration: 20, Price: 18, Description: "Sculpted beard trim with hot towel."},
	{ID: "groom", Name: "Full Grooming", Duration: 60, Price: 55, Description: "Cut, beard, and hot towel treatment."},
}

var defaultProviders = []models.Provider{
	{ID: "fadi", Name: "Fadi Salameh", Services: []string{"classic", "fade", "groom"}},
	{ID: "islam", Name: "Islam", Services: []string{"classic", "beard", "groom"}},
}

var defaultAvailability = models.AvailabilityTable{
	"fadi": {
		"Monday":    {"09:00", "09:30", "10:00", "10:30", "13:00", "13:30", "16:00", "16:30"},
		"Wednesday": {"10:00", "10:30", "12:00", "12:30", "15:00", "15:30"},
		"Friday":    {"09:00", "09:30", "14:00", "14:30", "17:00", "17:30"},
		"Saturday":  {"10:00", "10:30", "12:00", "12:30", "14:00", "14:30"},
	},
	"islam": {
		"Tuesday":  {"09:30", "10:00", "11:30", "12:00", "14:30", "15:00", "16:30"},
		"Thursday": {"10:00", "10:30", "12:00", "12:30", "15:00", "15:30"},
		"Sunday":   {"11:00", "11:30", "13:00", "13:30", "16:00", "16:30"},
		"Saturday": {"09:00", "09:30", "11:30", "12:00", "13:30", "14:00"},
	},
}
