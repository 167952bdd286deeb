// Package cache - сериализация domain entities для хранения в кэше.
//
// У entities приватные поля, напрямую в JSON они не ходят. Record
// структуры - плоское представление для кэша; восстановление идёт
// через Reconstruct* без повторной валидации, как из БД.
package cache

import (
	"time"

	"github.com/google/uuid"

	"github.com/roadshare/roadshare/internal/domain/entities"
)

type userRecord struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password_hash"`
	FullName     string     `json:"full_name"`
	Phone        string     `json:"phone"`
	Role         string     `json:"role"`
	AnonymizedAt *time.Time `json:"anonymized_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toUserRecord(u *entities.User) userRecord {
	return userRecord{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		FullName:     u.FullName(),
		Phone:        u.Phone(),
		Role:         string(u.Role()),
		AnonymizedAt: u.AnonymizedAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

func (r userRecord) toEntity() *entities.User {
	return entities.ReconstructUser(
		r.ID, r.Email, r.PasswordHash, r.FullName, r.Phone,
		entities.Role(r.Role),
		r.AnonymizedAt,
		r.CreatedAt, r.UpdatedAt,
	)
}

// userPage - страница пользователей вместе с total, чтобы один ключ
// кэша отдавал весь ответ FindAll.
type userPage struct {
	Users []userRecord `json:"users"`
	Total int          `json:"total"`
}

func toUserPage(users []*entities.User, total int) userPage {
	records := make([]userRecord, len(users))
	for i, u := range users {
		records[i] = toUserRecord(u)
	}
	return userPage{Users: records, Total: total}
}

func (p userPage) toEntities() []*entities.User {
	users := make([]*entities.User, len(p.Users))
	for i, r := range p.Users {
		users[i] = r.toEntity()
	}
	return users
}

type travelRecord struct {
	ID            uuid.UUID `json:"id"`
	DriverID      uuid.UUID `json:"driver_id"`
	CarID         uuid.UUID `json:"car_id"`
	DepartureCity uuid.UUID `json:"departure_city_id"`
	ArrivalCity   uuid.UUID `json:"arrival_city_id"`
	Date          time.Time `json:"date"`
	Kms           int       `json:"kms"`
	Seats         int       `json:"seats"`
	CreatedAt     time.Time `json:"created_at"`
}

func toTravelRecord(t *entities.Travel) travelRecord {
	return travelRecord{
		ID:            t.ID(),
		DriverID:      t.DriverID(),
		CarID:         t.CarID(),
		DepartureCity: t.DepartureCity(),
		ArrivalCity:   t.ArrivalCity(),
		Date:          t.Date(),
		Kms:           t.Kms(),
		Seats:         t.Seats(),
		CreatedAt:     t.CreatedAt(),
	}
}

func (r travelRecord) toEntity() *entities.Travel {
	return entities.ReconstructTravel(
		r.ID, r.DriverID, r.CarID, r.DepartureCity, r.ArrivalCity,
		r.Date, r.Kms, r.Seats, r.CreatedAt,
	)
}

type travelPage struct {
	Travels []travelRecord `json:"travels"`
	Total   int            `json:"total"`
}

func toTravelPage(travels []*entities.Travel, total int) travelPage {
	records := make([]travelRecord, len(travels))
	for i, t := range travels {
		records[i] = toTravelRecord(t)
	}
	return travelPage{Travels: records, Total: total}
}

func (p travelPage) toEntities() []*entities.Travel {
	travels := make([]*entities.Travel, len(p.Travels))
	for i, r := range p.Travels {
		travels[i] = r.toEntity()
	}
	return travels
}

type inscriptionRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TravelID  uuid.UUID `json:"travel_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func toInscriptionRecord(i *entities.Inscription) inscriptionRecord {
	return inscriptionRecord{
		ID:        i.ID(),
		UserID:    i.UserID(),
		TravelID:  i.TravelID(),
		Status:    string(i.Status()),
		CreatedAt: i.CreatedAt(),
	}
}

func (r inscriptionRecord) toEntity() *entities.Inscription {
	return entities.ReconstructInscription(
		r.ID, r.UserID, r.TravelID,
		entities.InscriptionStatus(r.Status),
		r.CreatedAt,
	)
}

func toInscriptionRecords(list []*entities.Inscription) []inscriptionRecord {
	records := make([]inscriptionRecord, len(list))
	for i, ins := range list {
		records[i] = toInscriptionRecord(ins)
	}
	return records
}

func fromInscriptionRecords(records []inscriptionRecord) []*entities.Inscription {
	list := make([]*entities.Inscription, len(records))
	for i, r := range records {
		list[i] = r.toEntity()
	}
	return list
}

type cityRecord struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	ZipCode string    `json:"zip_code"`
}

func toCityRecord(c *entities.City) cityRecord {
	return cityRecord{ID: c.ID(), Name: c.Name(), ZipCode: c.ZipCode()}
}

func (r cityRecord) toEntity() *entities.City {
	return entities.ReconstructCity(r.ID, r.Name, r.ZipCode)
}

type cityPage struct {
	Cities []cityRecord `json:"cities"`
	Total  int          `json:"total"`
}

func toCityPage(cities []*entities.City, total int) cityPage {
	records := make([]cityRecord, len(cities))
	for i, c := range cities {
		records[i] = toCityRecord(c)
	}
	return cityPage{Cities: records, Total: total}
}

func (p cityPage) toEntities() []*entities.City {
	cities := make([]*entities.City, len(p.Cities))
	for i, r := range p.Cities {
		cities[i] = r.toEntity()
	}
	return cities
}

type carRecord struct {
	ID        uuid.UUID `json:"id"`
	DriverID  uuid.UUID `json:"driver_id"`
	ModelID   uuid.UUID `json:"model_id"`
	ColorID   uuid.UUID `json:"color_id"`
	Plate     string    `json:"plate"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"created_at"`
}

func toCarRecord(c *entities.Car) carRecord {
	return carRecord{
		ID:        c.ID(),
		DriverID:  c.DriverID(),
		ModelID:   c.ModelID(),
		ColorID:   c.ColorID(),
		Plate:     c.Plate(),
		Seats:     c.Seats(),
		CreatedAt: c.CreatedAt(),
	}
}

func (r carRecord) toEntity() *entities.Car {
	return entities.ReconstructCar(r.ID, r.DriverID, r.ModelID, r.ColorID, r.Plate, r.Seats, r.CreatedAt)
}

func toCarRecords(cars []*entities.Car) []carRecord {
	records := make([]carRecord, len(cars))
	for i, c := range cars {
		records[i] = toCarRecord(c)
	}
	return records
}

func fromCarRecords(records []carRecord) []*entities.Car {
	cars := make([]*entities.Car, len(records))
	for i, r := range records {
		cars[i] = r.toEntity()
	}
	return cars
}

type carPage struct {
	Cars  []carRecord `json:"cars"`
	Total int         `json:"total"`
}

type driverRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	License   string    `json:"license"`
	CreatedAt time.Time `json:"created_at"`
}

func toDriverRecord(d *entities.Driver) driverRecord {
	return driverRecord{ID: d.ID(), UserID: d.UserID(), License: d.License(), CreatedAt: d.CreatedAt()}
}

func (r driverRecord) toEntity() *entities.Driver {
	return entities.ReconstructDriver(r.ID, r.UserID, r.License, r.CreatedAt)
}

type brandRecord struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type brandPage struct {
	Brands []brandRecord `json:"brands"`
	Total  int           `json:"total"`
}

func toBrandPage(brands []*entities.Brand, total int) brandPage {
	records := make([]brandRecord, len(brands))
	for i, b := range brands {
		records[i] = brandRecord{ID: b.ID(), Name: b.Name()}
	}
	return brandPage{Brands: records, Total: total}
}

func (p brandPage) toEntities() []*entities.Brand {
	brands := make([]*entities.Brand, len(p.Brands))
	for i, r := range p.Brands {
		brands[i] = entities.ReconstructBrand(r.ID, r.Name)
	}
	return brands
}

type modelRecord struct {
	ID      uuid.UUID `json:"id"`
	BrandID uuid.UUID `json:"brand_id"`
	Name    string    `json:"name"`
}

type modelPage struct {
	Models []modelRecord `json:"models"`
	Total  int           `json:"total"`
}

func toModelRecords(models []*entities.Model) []modelRecord {
	records := make([]modelRecord, len(models))
	for i, m := range models {
		records[i] = modelRecord{ID: m.ID(), BrandID: m.BrandID(), Name: m.Name()}
	}
	return records
}

func fromModelRecords(records []modelRecord) []*entities.Model {
	models := make([]*entities.Model, len(records))
	for i, r := range records {
		models[i] = entities.ReconstructModel(r.ID, r.BrandID, r.Name)
	}
	return models
}

type colorRecord struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type colorPage struct {
	Colors []colorRecord `json:"colors"`
	Total  int           `json:"total"`
}

func toColorPage(colors []*entities.Color, total int) colorPage {
	records := make([]colorRecord, len(colors))
	for i, c := range colors {
		records[i] = colorRecord{ID: c.ID(), Name: c.Name()}
	}
	return colorPage{Colors: records, Total: total}
}

func (p colorPage) toEntities() []*entities.Color {
	colors := make([]*entities.Color, len(p.Colors))
	for i, r := range p.Colors {
		colors[i] = entities.ReconstructColor(r.ID, r.Name)
	}
	return colors
}
