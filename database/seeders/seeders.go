package seeders

import (
	"log"
	"scolaris_go/database"
	"scolaris_go/models"
	"scolaris_go/utils"
)

// SeedAll runs all seeders
func SeedAll() {
	log.Println("Starting database seeding...")

	SeedUsers()
	SeedClasses()
	SeedProfessors()
	SeedRooms()
	SeedCourses()
	SeedStudents()

	log.Println("Database seeding completed successfully!")
}

// SeedUsers seeds the users table
func SeedUsers() {
	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Users already seeded, skipping...")
		return
	}

	// Hash the default password
	hashedPassword, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			Username: "directeur",
			Password: hashedPassword,
			Email:    "directeur@scolaris.fr",
			Phone:    "0601020304",
			Role:     "director",
			Status:   "active",
		},
		{
			Username: "admin",
			Password: hashedPassword,
			Email:    "admin@scolaris.fr",
			Phone:    "0601020305",
			Role:     "admin",
			Status:   "active",
		},
		{
			Username: "a.diallo",
			Password: hashedPassword,
			Email:    "a.diallo@scolaris.fr",
			Phone:    "0601020306",
			Role:     "professor",
			Status:   "active",
		},
	}

	for _, user := range users {
		if err := database.DB.Create(&user).Error; err != nil {
			log.Printf("Error seeding user %s: %v", user.Username, err)
		}
	}

	log.Println("Users seeded successfully")
}

// SeedClasses seeds the school classes table
func SeedClasses() {
	var count int64
	database.DB.Model(&models.SchoolClass{}).Count(&count)
	if count > 0 {
		log.Println("Classes already seeded, skipping...")
		return
	}

	classes := []models.SchoolClass{
		{Name: "L1-CPD", Level: "L1", Track: "Conception et Programmation", Capacity: 40, Active: true},
		{Name: "L1-RT", Level: "L1", Track: "Réseaux et Télécommunications", Capacity: 35, Active: true},
		{Name: "L2-CPD", Level: "L2", Track: "Conception et Programmation", Capacity: 35, Active: true},
		{Name: "L3-GL", Level: "L3", Track: "Génie Logiciel", Capacity: 30, Active: true},
	}

	for _, class := range classes {
		if err := database.DB.Create(&class).Error; err != nil {
			log.Printf("Error seeding class %s: %v", class.Name, err)
		}
	}

	log.Println("Classes seeded successfully")
}

// SeedProfessors seeds the professors table
func SeedProfessors() {
	var count int64
	database.DB.Model(&models.Professor{}).Count(&count)
	if count > 0 {
		log.Println("Professors already seeded, skipping...")
		return
	}

	professors := []models.Professor{
		{
			FirstName:  "Amadou",
			LastName:   "Diallo",
			Email:      "a.diallo@scolaris.fr",
			Speciality: "Algorithmique",
			Grade:      "Professeur",
			Active:     true,
		},
		{
			FirstName:  "Claire",
			LastName:   "Moreau",
			Email:      "c.moreau@scolaris.fr",
			Speciality: "Bases de données",
			Grade:      "Maître de conférences",
			Active:     true,
		},
		{
			FirstName:  "Julien",
			LastName:   "Lefèvre",
			Email:      "j.lefevre@scolaris.fr",
			Speciality: "Réseaux",
			Grade:      "Assistant",
			Active:     true,
		},
	}

	for _, professor := range professors {
		if err := database.DB.Create(&professor).Error; err != nil {
			log.Printf("Error seeding professor %s: %v", professor.LastName, err)
		}
	}

	log.Println("Professors seeded successfully")
}

// SeedRooms seeds the rooms table
func SeedRooms() {
	var count int64
	database.DB.Model(&models.Room{}).Count(&count)
	if count > 0 {
		log.Println("Rooms already seeded, skipping...")
		return
	}

	rooms := []models.Room{
		{Name: "A101", Building: "Bâtiment A", Capacity: 40, Status: "available"},
		{Name: "B204", Building: "Bâtiment B", Capacity: 35, Status: "available"},
		{Name: "B305", Building: "Bâtiment B", Capacity: 30, Status: "available"},
		{Name: "Labo Info 1", Building: "Bâtiment C", Capacity: 25, Status: "available"},
	}

	for _, room := range rooms {
		if err := database.DB.Create(&room).Error; err != nil {
			log.Printf("Error seeding room %s: %v", room.Name, err)
		}
	}

	log.Println("Rooms seeded successfully")
}

// SeedCourses seeds the courses table
func SeedCourses() {
	var count int64
	database.DB.Model(&models.Course{}).Count(&count)
	if count > 0 {
		log.Println("Courses already seeded, skipping...")
		return
	}

	courses := []models.Course{
		{Name: "Algorithmes", Code: "ALG101", ClassID: 1, ProfessorID: 1, Hours: 48, Coefficient: 3, Semester: "S1", Status: "active"},
		{Name: "Bases de données", Code: "BDD101", ClassID: 1, ProfessorID: 2, Hours: 36, Coefficient: 2, Semester: "S1", Status: "active"},
		{Name: "Réseaux", Code: "RES101", ClassID: 2, ProfessorID: 3, Hours: 36, Coefficient: 2, Semester: "S1", Status: "active"},
		{Name: "Programmation Web", Code: "WEB201", ClassID: 3, ProfessorID: 1, Hours: 42, Coefficient: 3, Semester: "S1", Status: "active"},
	}

	for _, course := range courses {
		if err := database.DB.Create(&course).Error; err != nil {
			log.Printf("Error seeding course %s: %v", course.Code, err)
		}
	}

	log.Println("Courses seeded successfully")
}

// SeedStudents seeds the students table
func SeedStudents() {
	var count int64
	database.DB.Model(&models.Student{}).Count(&count)
	if count > 0 {
		log.Println("Students already seeded, skipping...")
		return
	}

	students := []models.Student{
		{ClassID: 1, FirstName: "Fatou", LastName: "Ndiaye", Email: "f.ndiaye@etu.scolaris.fr"},
		{ClassID: 1, FirstName: "Lucas", LastName: "Bernard", Email: "l.bernard@etu.scolaris.fr"},
		{ClassID: 2, FirstName: "Aïcha", LastName: "Traoré", Email: "a.traore@etu.scolaris.fr"},
		{ClassID: 3, FirstName: "Hugo", LastName: "Petit", Email: "h.petit@etu.scolaris.fr"},
	}

	for _, student := range students {
		if err := database.DB.Create(&student).Error; err != nil {
			log.Printf("Error seeding student %s: %v", student.LastName, err)
		}
	}

	log.Println("Students seeded successfully")
}
