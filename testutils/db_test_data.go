package testutils

import (
	"context"
	"log"
	"time"

	"github.com/Eitve/RKL/containers"
	"github.com/Eitve/RKL/db"
	"github.com/Eitve/RKL/model"
	"github.com/itbasis/go-clock"
)

var (
	Palanga = &model.Team{
		ID:        "palanga",
		Name:      "BC Palanga",
		Division:  model.DivisionA,
		HeadCoach: "Tomas Jankauskas",
	}
	Mazeikiai = &model.Team{
		ID:        "mazeikiai",
		Name:      "BC Mazeikiai",
		Division:  model.DivisionA,
		HeadCoach: "Donatas Petrauskas",
	}
	Sakalai = &model.Team{
		ID:       "sakalai",
		Name:     "Vilniaus Sakalai",
		Division: model.DivisionBA,
	}

	SarunasCepukas = &model.Player{
		TeamID:      "palanga",
		Key:         "sarunascepukas",
		FirstName:   "Šarūnas",
		LastName:    "Čepukas",
		BirthDate:   time.Date(1999, time.March, 12, 0, 0, 0, 0, time.UTC),
		Nationality: "Lithuanian",
		Height:      198,
		Weight:      92,
		ShirtNumber: 7,
		Position:    model.POS_SG,
	}
	MantasZukauskas = &model.Player{
		TeamID:      "palanga",
		Key:         "mantaszukauskas",
		FirstName:   "Mantas",
		LastName:    "Žukauskas",
		BirthDate:   time.Date(1996, time.November, 2, 0, 0, 0, 0, time.UTC),
		Nationality: "Lithuanian",
		Height:      206,
		Weight:      104,
		ShirtNumber: 15,
		Position:    model.POS_C,
	}
	JustasUrbonas = &model.Player{
		TeamID:      "mazeikiai",
		Key:         "justasurbonas",
		FirstName:   "Justas",
		LastName:    "Urbonas",
		Nationality: "Lithuanian",
		Height:      190,
		Weight:      86,
		ShirtNumber: 4,
		Position:    model.POS_PG,
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
	Clock     clock.Clock
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()
	clock := clock.New()

	db, err := db.New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestData(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestData(db db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, t := range []*model.Team{Palanga, Mazeikiai, Sakalai} {
		if err := db.SaveTeam(ctx, t); err != nil {
			return err
		}
	}

	for _, p := range []*model.Player{SarunasCepukas, MantasZukauskas, JustasUrbonas} {
		if err := db.SavePlayer(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
