package models

import "time"

// SeedProducts is the initial catalog written to an empty products table.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Ghost Rider Pro 2024",
			Price:       4500,
			Category:    CategoryMountain,
			Image:       "https://picsum.photos/800/600?random=1",
			Description: "אופני הרים מקצועיים עם שיכוך מלא ושלדת קרבון קלה במיוחד.",
			Specs:       []string{"שלדת קרבון", "גלגלי 29 אינץ׳", "מערכת הילוכים Shimano XT"},
			IsNew:       true,
		},
		{
			ID:          "2",
			Name:        "Urban Glide E-Bike",
			Price:       6200,
			Category:    CategoryElectric,
			Image:       "https://picsum.photos/800/600?random=2",
			Description: "אופניים חשמליים מתקפלים, מושלמים לנסיעה ברכבת ולמשרד.",
			Specs:       []string{"סוללה 48V", "טווח 40 ק״מ", "משקל 18 ק״ג"},
		},
		{
			ID:          "3",
			Name:        "SpeedMaster 300",
			Price:       8900,
			Category:    CategoryRoad,
			Image:       "https://picsum.photos/800/600?random=3",
			Description: "אופני כביש אווירודינמיים למהירויות גבוהות ותחרויות.",
			Specs:       []string{"בלמי דיסק", "צמיגי Continental", "משקל 7.2 ק״ג"},
		},
		{
			ID:          "4",
			Name:        "City Cruiser Classic",
			Price:       2100,
			Category:    CategoryUrban,
			Image:       "https://picsum.photos/800/600?random=4",
			Description: "אופני עיר נוחים בעיצוב רטרו קלאסי לרכיבה יומיומית.",
			Specs:       []string{"מושב עור רחב", "סלסלה קדמית", "3 הילוכים"},
		},
		{
			ID:          "5",
			Name:        "Trail Blazer X",
			Price:       3200,
			Category:    CategoryMountain,
			Image:       "https://picsum.photos/800/600?random=5",
			Description: "אופני זנב קשיח אגרסיביים לשבילים טכניים.",
			Specs:       []string{"בולם זעזועים קדמי 140ממ", "צמיגי שטח רחבים"},
		},
		{
			ID:          "6",
			Name:        "Volt Commuter",
			Price:       5500,
			Category:    CategoryElectric,
			Image:       "https://picsum.photos/800/600?random=6",
			Description: "אופניים חשמליים חזקים לעליות תלולות ונסיעות ארוכות.",
			Specs:       []string{"מנוע 250W", "סוללה נשלפת", "תצוגה דיגיטלית"},
		},
		{
			ID:          "7",
			Name:        "CST Premium Tube",
			Price:       45,
			Category:    CategoryAccessories,
			Image:       "https://picsum.photos/800/600?random=7",
			Description: "פנימית איכותית 29 אינץ׳ עם חומר נוגד תקרים (ג׳יפה) לרכיבה שקטה.",
			Specs:       []string{"ונטיל צרפתי", "עמידות גבוהה"},
		},
		{
			ID:          "8",
			Name:        "Smart Controller 500W",
			Price:       350,
			Category:    CategoryAccessories,
			Image:       "https://picsum.photos/800/600?random=8",
			Description: "בקר מנוע חכם לאופניים חשמליים, כולל צג דיגיטלי ואפשרויות תכנות.",
			Specs:       []string{"36V/48V", "תצוגת LED"},
		},
	}
}

const (
	DefaultAdminID       = "1"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "123"
)

// DefaultAdmin is the account seeded into an empty users table.
func DefaultAdmin(now time.Time) User {
	return User{
		ID:        DefaultAdminID,
		Username:  DefaultAdminUsername,
		Password:  DefaultAdminPassword,
		FullName:  "מנהל ראשי",
		Role:      RoleAdmin,
		CreatedAt: now,
	}
}
