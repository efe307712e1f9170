package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/user/invoicer/internal/pkg/config"
	"github.com/user/invoicer/internal/pkg/logger"
	"github.com/user/invoicer/pkg/util"

	_ "github.com/lib/pq" // postgres driver
)

type seedUser struct {
	ID       string
	Name     string
	Email    string
	Password string // plaintext in the fixture, hashed before insert
}

type seedCustomer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}

type seedInvoice struct {
	CustomerIndex int
	Amount        int64 // minor units
	Status        string
	Date          string
}

type seedRevenue struct {
	Month   string
	Revenue int64
}

var users = []seedUser{
	{ID: "410544b2-4001-4271-9855-fec4b6a6442a", Name: "User", Email: "user@nextmail.com", Password: "123456"},
}

var customers = []seedCustomer{
	{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
	{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
	{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
	{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
	{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
	{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
}

var invoices = []seedInvoice{
	{CustomerIndex: 0, Amount: 15795, Status: "pending", Date: "2022-12-06"},
	{CustomerIndex: 1, Amount: 20348, Status: "pending", Date: "2022-11-14"},
	{CustomerIndex: 4, Amount: 3040, Status: "paid", Date: "2022-10-29"},
	{CustomerIndex: 3, Amount: 44800, Status: "paid", Date: "2023-09-10"},
	{CustomerIndex: 5, Amount: 34577, Status: "pending", Date: "2023-08-05"},
	{CustomerIndex: 2, Amount: 54246, Status: "pending", Date: "2023-07-16"},
	{CustomerIndex: 0, Amount: 666, Status: "pending", Date: "2023-06-27"},
	{CustomerIndex: 3, Amount: 32545, Status: "paid", Date: "2023-06-09"},
	{CustomerIndex: 4, Amount: 1250, Status: "paid", Date: "2023-06-17"},
	{CustomerIndex: 5, Amount: 8546, Status: "paid", Date: "2023-06-07"},
	{CustomerIndex: 1, Amount: 500, Status: "paid", Date: "2023-08-19"},
	{CustomerIndex: 5, Amount: 8945, Status: "paid", Date: "2023-06-03"},
	{CustomerIndex: 2, Amount: 1000, Status: "paid", Date: "2022-06-05"},
}

var revenue = []seedRevenue{
	{Month: "Jan", Revenue: 2000}, {Month: "Feb", Revenue: 1800},
	{Month: "Mar", Revenue: 2200}, {Month: "Apr", Revenue: 2500},
	{Month: "May", Revenue: 2300}, {Month: "Jun", Revenue: 3200},
	{Month: "Jul", Revenue: 3500}, {Month: "Aug", Revenue: 3700},
	{Month: "Sep", Revenue: 2500}, {Month: "Oct", Revenue: 2800},
	{Month: "Nov", Revenue: 3000}, {Month: "Dec", Revenue: 4800},
}

var schema = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		image_url VARCHAR(255) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID DEFAULT uuid_generate_v4() PRIMARY KEY,
		customer_id UUID NOT NULL,
		amount INT NOT NULL,
		status VARCHAR(255) NOT NULL,
		date DATE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS revenue (
		month VARCHAR(4) NOT NULL UNIQUE,
		revenue INT NOT NULL
	)`,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logger.New(cfg.LogLevel)
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.PostgresURL)
	if err != nil {
		logger.Error("failed to connect to postgres", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := seed(ctx, db); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}

	logger.Info("database seeded",
		"users", len(users),
		"customers", len(customers),
		"invoices", len(invoices),
		"revenue_months", len(revenue),
	)
}

func seed(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	for _, u := range users {
		hash, err := util.HashPassword(u.Password)
		if err != nil {
			return err
		}
		_, err = db.ExecContext(ctx, `
			INSERT INTO users (id, name, email, password)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`, u.ID, u.Name, u.Email, hash)
		if err != nil {
			return err
		}
	}

	for _, c := range customers {
		_, err := db.ExecContext(ctx, `
			INSERT INTO customers (id, name, email, image_url)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`, c.ID, c.Name, c.Email, c.ImageURL)
		if err != nil {
			return err
		}
	}

	for _, inv := range invoices {
		_, err := db.ExecContext(ctx, `
			INSERT INTO invoices (customer_id, amount, status, date)
			VALUES ($1, $2, $3, $4)
		`, customers[inv.CustomerIndex].ID, inv.Amount, inv.Status, inv.Date)
		if err != nil {
			return err
		}
	}

	for _, rev := range revenue {
		_, err := db.ExecContext(ctx, `
			INSERT INTO revenue (month, revenue)
			VALUES ($1, $2)
			ON CONFLICT (month) DO NOTHING
		`, rev.Month, rev.Revenue)
		if err != nil {
			return err
		}
	}

	return nil
}
