package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"assurly/internal/auth"
	"assurly/internal/models"
	"assurly/internal/services"

	"gorm.io/gorm"
)

// Seeder installs the bootstrap data: the six regression models, demo users,
// three staff advisors with profiles and default availability windows, demo
// predictions and demo appointments. Every step uses lookup-or-create, so
// running it again is a no-op. It is invoked deliberately through the seed
// CLI, never as a migration side effect.
type Seeder struct {
	db       *gorm.DB
	resolver services.PredictionResolver
}

func NewSeeder(db *gorm.DB, resolver services.PredictionResolver) *Seeder {
	return &Seeder{db: db, resolver: resolver}
}

func (s *Seeder) Seed(ctx context.Context) error {
	regModels, err := s.seedRegModels()
	if err != nil {
		return fmt.Errorf("seeding regression models: %w", err)
	}

	users, staff, err := s.seedUsers()
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	if err := s.seedAvailabilities(staff); err != nil {
		return fmt.Errorf("seeding availabilities: %w", err)
	}

	if err := s.seedPredictions(ctx, users, staff, regModels); err != nil {
		return fmt.Errorf("seeding predictions: %w", err)
	}

	if err := s.seedAppointments(users, staff); err != nil {
		return fmt.Errorf("seeding appointments: %w", err)
	}

	log.Println("Seed data installed successfully")
	return nil
}

func (s *Seeder) seedRegModels() ([]models.RegModel, error) {
	entries := []models.RegModel{
		{Name: "linéaire basique", Path: "regression/models/basic_linreg_model.json"},
		{Name: "Gradient boosting", Path: "regression/models/gb_model.json"},
		{Name: "linéaire", Path: "regression/models/linreg_model.json"},
		{Name: "random forest", Path: "regression/models/rf_model.json"},
		{Name: "ridge_model", Path: "regression/models/ridge_model.json"},
		{Name: "lasso model", Path: "regression/models/best_lasso_model.json"},
	}

	out := make([]models.RegModel, len(entries))
	for i, entry := range entries {
		model := entry
		err := s.db.Where("name = ?", entry.Name).FirstOrCreate(&model, entry).Error
		if err != nil {
			return nil, err
		}
		out[i] = model
	}
	log.Printf("Regression models ready (%d registered)", len(out))
	return out, nil
}

type seedUser struct {
	username  string
	firstName string
	lastName  string
	email     string
	age       *int
	address   string
	isStaff   bool
	title     string
	desc      string
	img       string
}

func (s *Seeder) seedUsers() (map[string]models.User, map[string]models.User, error) {
	age72 := 72
	age19 := 19

	entries := []seedUser{
		{username: "jeanmichou", firstName: "Jean", lastName: "Michou", email: "jean.michou@example.fr", age: &age72, address: "2 rue de la corne"},
		{username: "gisele", firstName: "Gis", lastName: "Elle", email: "gisele@example.fr", age: &age19, address: "37 rue de la licorne"},
		{
			username: "ludivine", firstName: "Lu", lastName: "Divine", email: "ludivine@assurly.fr", isStaff: true,
			title: "Conseillère en Assurance - Lu Divine",
			desc:  "Toujours rapide et efficace, Lu Divine est la conseillère idéale pour ceux qui veulent des réponses claires et précises sans perdre une minute.",
			img:   "css/dist/ludi_licorne.jpg",
		},
		{
			username: "vic", firstName: "Vi", lastName: "Tor", email: "vic@assurly.fr", isStaff: true,
			title: "Conseillère en Assurance - Vi Tor",
			desc:  "Un brin tête en l'air mais débordante d'énergie positive, Vi Tor met des paillettes partout où elle passe !",
			img:   "css/dist/vic_licorne.jpg",
		},
		{
			username: "raouf", firstName: "Ra", lastName: "Ouf", email: "raouf@assurly.fr", isStaff: true,
			title: "Conseiller en Assurance - Ra Ouf",
			desc:  "Ra Ouf est le conseiller en assurance qui trouve toujours une solution. Son sang-froid légendaire fait de lui un roc sur lequel ses clients peuvent compter.",
			img:   "css/dist/raouf_licorne.jpg",
		},
	}

	users := make(map[string]models.User)
	staff := make(map[string]models.User)

	for _, entry := range entries {
		var user models.User
		err := s.db.Where("username = ?", entry.username).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			hash, hashErr := auth.HashPassword("password")
			if hashErr != nil {
				return nil, nil, hashErr
			}
			user = models.User{
				Username:  entry.username,
				Password:  hash,
				FirstName: entry.firstName,
				LastName:  entry.lastName,
				Email:     entry.email,
				Age:       entry.age,
				Address:   entry.address,
				IsStaff:   entry.isStaff,
			}
			if err := s.db.Create(&user).Error; err != nil {
				return nil, nil, err
			}
		} else if err != nil {
			return nil, nil, err
		}

		if entry.isStaff {
			profile := models.StaffProfile{
				UserID:      user.ID,
				Title:       entry.title,
				Description: entry.desc,
				Img:         entry.img,
			}
			err := s.db.Where("user_id = ?", user.ID).
				FirstOrCreate(&models.StaffProfile{}, profile).Error
			if err != nil {
				return nil, nil, err
			}
			staff[entry.username] = user
		}
		users[entry.username] = user
	}

	log.Printf("Users ready (%d total, %d staff)", len(users), len(staff))
	return users, staff, nil
}

// seedAvailabilities installs the default Monday to Friday 13:00-16:00
// windows every advisor starts with.
func (s *Seeder) seedAvailabilities(staff map[string]models.User) error {
	for _, user := range staff {
		for day := 0; day < 5; day++ {
			window := models.Availability{
				StaffUserID: user.ID,
				DayOfWeek:   day,
				StartTime:   "13:00",
				EndTime:     "16:00",
			}
			err := s.db.Where(models.Availability{
				StaffUserID: user.ID,
				DayOfWeek:   day,
				StartTime:   "13:00",
				EndTime:     "16:00",
			}).FirstOrCreate(&window).Error
			if err != nil {
				return err
			}
		}
	}
	log.Println("Default availability windows ready")
	return nil
}

func (s *Seeder) seedPredictions(ctx context.Context, users, staff map[string]models.User, regModels []models.RegModel) error {
	var count int64
	if err := s.db.Model(&models.Prediction{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Predictions already present, skipping")
		return nil
	}

	type demo struct {
		subject  string
		author   string
		model    int
		age      int
		children int
		weight   float64
		height   float64
		smoker   string
		region   string
	}
	demos := []demo{
		{subject: "jeanmichou", author: "ludivine", model: 0, age: 30, children: 2, weight: 70.5, height: 170, smoker: models.SmokerNo, region: models.RegionSouthwest},
		{subject: "gisele", author: "ludivine", model: 1, age: 40, children: 1, weight: 80.2, height: 175, smoker: models.SmokerYes, region: models.RegionNortheast},
		{subject: "gisele", author: "vic", model: 2, age: 50, children: 0, weight: 90.2, height: 165, smoker: models.SmokerYes, region: models.RegionSoutheast},
		{subject: "jeanmichou", author: "ludivine", model: 3, age: 45, children: 4, weight: 103, height: 197, smoker: models.SmokerNo, region: models.RegionSouthwest},
		{subject: "gisele", author: "ludivine", model: 4, age: 70, children: 3, weight: 150, height: 145, smoker: models.SmokerNo, region: models.RegionNortheast},
		{subject: "jeanmichou", author: "vic", model: 5, age: 55, children: 5, weight: 45, height: 160, smoker: models.SmokerYes, region: models.RegionSoutheast},
	}

	for _, d := range demos {
		subject := users[d.subject]
		author := staff[d.author]
		prediction := models.Prediction{
			Age:         d.age,
			Sex:         models.SexFemale,
			Weight:      d.weight,
			Height:      d.height,
			Children:    d.children,
			Smoker:      d.smoker,
			Region:      d.region,
			UserID:      &subject.ID,
			RegModelID:  &regModels[d.model].ID,
			MadeByID:    author.ID,
			MadeByStaff: true,
		}
		if err := s.resolver.Resolve(ctx, &prediction); err != nil {
			return err
		}
		if err := s.db.Create(&prediction).Error; err != nil {
			return err
		}
	}

	log.Printf("Demo predictions ready (%d created)", len(demos))
	return nil
}

func (s *Seeder) seedAppointments(users, staff map[string]models.User) error {
	date := time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC)
	jean := users["jeanmichou"]

	entries := []models.Appointment{
		{UserID: jean.ID, StaffUserID: staff["vic"].ID, Date: date, StartTime: "14:00", EndTime: "15:00"},
		{UserID: jean.ID, StaffUserID: staff["ludivine"].ID, Date: date, StartTime: "13:00", EndTime: "14:00"},
		{UserID: jean.ID, StaffUserID: staff["raouf"].ID, Date: date, StartTime: "15:00", EndTime: "16:00"},
	}

	for _, entry := range entries {
		appointment := entry
		err := s.db.Where(models.Appointment{
			StaffUserID: entry.StaffUserID,
			Date:        entry.Date,
			StartTime:   entry.StartTime,
			EndTime:     entry.EndTime,
		}).FirstOrCreate(&appointment).Error
		if err != nil {
			return err
		}
	}

	log.Println("Demo appointments ready")
	return nil
}
