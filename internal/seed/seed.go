// Package seed loads first-run data from a YAML file: users for the three
// dashboards and opening item quantities expressed as deliveries, so the
// load-time reconciliation pass derives all stock figures.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nmarkovic/magacin/internal/model"
	"github.com/nmarkovic/magacin/internal/warehouse"
)

type file struct {
	Users    []userRow    `yaml:"users"`
	Items    []itemRow    `yaml:"items"`
	Projects []projectRow `yaml:"projects"`
}

type userRow struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
	Code  string `yaml:"code"`
}

type itemRow struct {
	Code              string  `yaml:"code"`
	Name              string  `yaml:"name"`
	Project           string  `yaml:"project"`
	Location          string  `yaml:"location"`
	Supplier          string  `yaml:"supplier"`
	Price             float64 `yaml:"price"`
	Quantity          int     `yaml:"quantity"`
	LowStockThreshold int     `yaml:"low_stock_threshold"`
}

type projectRow struct {
	Name      string `yaml:"name"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
	Color     string `yaml:"color"`
}

// Load reads a seed file and converts it into store seed collections. Each
// item row becomes an item plus its opening delivery.
func Load(path string) (warehouse.Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return warehouse.Seed{}, fmt.Errorf("reading seed file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (warehouse.Seed, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return warehouse.Seed{}, fmt.Errorf("decoding seed file: %w", err)
	}

	var seed warehouse.Seed
	now := time.Now()

	for _, u := range f.Users {
		if !model.ValidRole(u.Role) {
			return warehouse.Seed{}, fmt.Errorf("seed user %q has invalid role %q", u.Name, u.Role)
		}
		seed.Users = append(seed.Users, model.User{
			ID:       model.NewID(),
			Name:     u.Name,
			Email:    u.Email,
			Role:     u.Role,
			UserCode: u.Code,
		})
	}

	for _, row := range f.Items {
		if row.Code == "" || row.Name == "" {
			return warehouse.Seed{}, fmt.Errorf("seed item missing code or name: %+v", row)
		}
		item := model.Item{
			ID:                model.NewID(),
			Code:              row.Code,
			Name:              row.Name,
			Project:           row.Project,
			Location:          row.Location,
			Supplier:          row.Supplier,
			Price:             row.Price,
			LowStockThreshold: row.LowStockThreshold,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		seed.Items = append(seed.Items, item)
		seed.Deliveries = append(seed.Deliveries, model.Delivery{
			ID:         model.NewID(),
			ItemID:     item.ID,
			Quantity:   row.Quantity,
			Price:      row.Price,
			Supplier:   row.Supplier,
			ReceivedAt: now,
		})
	}

	for _, p := range f.Projects {
		seed.Projects = append(seed.Projects, model.Project{
			ID:        model.NewID(),
			Name:      p.Name,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
			Color:     p.Color,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	return seed, nil
}
