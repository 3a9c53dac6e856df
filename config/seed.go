package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"nutrilog/models"
)

// Seed is the catalog and user set the memory store starts with.
//
//	products:
//	  - title: Banana
//	    categories: fruits
//	    weight: 100
//	    calories: 89
//	    notAllowedFor: [1, 4]
//	users:
//	  - id: 1b4e28ba-2fa1-11d2-883f-0016d3cca427
//	    name: Demo
//	    email: demo@example.com
type Seed struct {
	Products []SeedProduct `yaml:"products"`
	Users    []SeedUser    `yaml:"users"`
}

type SeedProduct struct {
	Title         string             `yaml:"title"`
	Categories    string             `yaml:"categories"`
	Weight        float64            `yaml:"weight"`
	Calories      float64            `yaml:"calories"`
	NotAllowedFor []models.BloodType `yaml:"notAllowedFor"`
}

type SeedUser struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// LoadSeed reads the seed file at path. An empty path yields an empty seed.
func LoadSeed(path string) (*Seed, error) {
	seed := &Seed{}
	if path == "" {
		return seed, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	if err := yaml.Unmarshal(raw, seed); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}
	return seed, nil
}

// CatalogProducts converts the seeded products, rejecting blank titles and
// unknown blood types.
func (s *Seed) CatalogProducts() ([]models.Product, error) {
	out := make([]models.Product, 0, len(s.Products))
	for i, sp := range s.Products {
		if models.TitleKey(sp.Title) == "" {
			return nil, fmt.Errorf("seed product %d: title is required", i)
		}
		p := models.Product{
			Title:      sp.Title,
			Categories: sp.Categories,
			Weight:     sp.Weight,
			Calories:   sp.Calories,
		}
		for _, bt := range sp.NotAllowedFor {
			if !bt.Valid() {
				return nil, fmt.Errorf("seed product %q: unknown blood type %d", sp.Title, bt)
			}
			p.SetForbidden(bt, true)
		}
		out = append(out, p)
	}
	return out, nil
}

// AccountUsers converts the seeded users. Users without an id get a fresh one.
func (s *Seed) AccountUsers() ([]models.User, error) {
	out := make([]models.User, 0, len(s.Users))
	for i, su := range s.Users {
		if su.Email == "" {
			return nil, fmt.Errorf("seed user %d: email is required", i)
		}
		u := models.User{Name: su.Name, Email: su.Email}
		if su.ID != "" {
			id, err := uuid.Parse(su.ID)
			if err != nil {
				return nil, fmt.Errorf("seed user %s: %w", su.Email, err)
			}
			u.ID = id
		}
		out = append(out, u)
	}
	return out, nil
}
