package store

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-recipe-share/models"
)

// Seed populates an empty [MemoryStore] with two demo accounts and their
// recipes so an in-memory server starts with browsable content. Passwords
// are bcrypt-hashed like real registrations.
func (m *MemoryStore) Seed(ctx context.Context) error {
	chefJohn, err := m.seedUser(ctx, models.User{
		Username: "chef_john",
		Email:    "chef_john@example.com",
		Name:     "John Smith",
		Bio:      "Professional chef with 15 years of experience",
	}, "carbonara")
	if err != nil {
		return err
	}

	cookingMaster, err := m.seedUser(ctx, models.User{
		Username: "cooking_master",
		Email:    "cooking_master@example.com",
		Name:     "Sarah Johnson",
		Bio:      "Home cook passionate about international cuisines",
	}, "tikka-masala")
	if err != nil {
		return err
	}

	carbonara, err := m.CreateRecipe(ctx, models.Recipe{
		Title:       "Spaghetti Carbonara",
		Description: "A classic Italian pasta dish with eggs, cheese, pancetta, and black pepper.",
		Ingredients: []string{
			"350g spaghetti",
			"150g pancetta or guanciale, diced",
			"3 large eggs",
			"50g pecorino romano cheese, grated",
			"50g parmesan cheese, grated",
			"Freshly ground black pepper",
			"Salt to taste",
		},
		Instructions: []string{
			"Bring a large pot of salted water to boil and cook spaghetti according to package instructions.",
			"While pasta cooks, heat a large skillet over medium heat and cook the pancetta until crispy.",
			"In a bowl, whisk together eggs, grated cheeses, and black pepper.",
			"Drain pasta, reserving 1/2 cup of pasta water.",
			"Working quickly, add hot pasta to the skillet with pancetta, remove from heat.",
			"Pour egg mixture over pasta and toss quickly to create a creamy sauce.",
			"Add a splash of reserved pasta water if needed to loosen the sauce.",
			"Serve immediately with extra grated cheese and black pepper.",
		},
		CookingTime: 25,
		Servings:    4,
		Difficulty:  models.DifficultyIntermediate,
		Category:    "Main Course",
		Cuisine:     "Italian",
		CreatedBy:   chefJohn.UserID,
	})
	if err != nil {
		return fmt.Errorf("seeding recipes failed: %w", err)
	}

	tikkaMasala, err := m.CreateRecipe(ctx, models.Recipe{
		Title:       "Chicken Tikka Masala",
		Description: "Grilled chunks of chicken enveloped in a creamy spiced tomato sauce.",
		Ingredients: []string{
			"800g boneless chicken thighs, cut into bite-sized pieces",
			"2 cups plain yogurt",
			"3 tbsp lemon juice",
			"4 tsp ground cumin",
			"4 tsp garam masala",
			"2 tbsp garlic paste",
			"1 large onion, finely chopped",
			"400g canned tomatoes",
			"1 cup heavy cream",
			"Fresh cilantro for garnish",
		},
		Instructions: []string{
			"Combine yogurt, lemon juice and the spices, then marinate the chicken for at least 2 hours.",
			"Preheat oven to 200°C. Bake the chicken on a sheet for 15 minutes.",
			"Soften the onion in oil, add tomatoes and simmer for 15 minutes.",
			"Add the baked chicken and simmer for 5 minutes.",
			"Stir in cream, simmer another 5 minutes and garnish with cilantro.",
		},
		CookingTime: 60,
		Servings:    6,
		Difficulty:  models.DifficultyIntermediate,
		Category:    "Main Course",
		Cuisine:     "Indian",
		CreatedBy:   cookingMaster.UserID,
	})
	if err != nil {
		return fmt.Errorf("seeding recipes failed: %w", err)
	}

	if err := m.AddFavorite(ctx, chefJohn.UserID, carbonara.RecipeID); err != nil {
		return fmt.Errorf("seeding favorites failed: %w", err)
	}
	if err := m.AddFavorite(ctx, cookingMaster.UserID, tikkaMasala.RecipeID); err != nil {
		return fmt.Errorf("seeding favorites failed: %w", err)
	}

	return nil
}

func (m *MemoryStore) seedUser(ctx context.Context, user models.User, password string) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("seeding users failed: %w", err)
	}
	user.PasswordHash = string(hash)

	created, err := m.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("seeding users failed: %w", err)
	}

	return created, nil
}
