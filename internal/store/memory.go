package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-share/internal/logger"
	"github.com/MKhiriev/go-recipe-share/models"
)

// MemoryStore is the in-memory data layer. It implements [UserRepository],
// [RecipeRepository] and [FavoritesRepository] over plain maps guarded by a
// single RWMutex, so every mutation is serialized and the uniqueness and
// idempotency invariants hold under concurrent use.
//
// It backs the server when no DSN is configured and doubles as the mock data
// layer in service and handler tests.
type MemoryStore struct {
	mu sync.RWMutex

	users   map[int64]models.User
	recipes map[int64]models.Recipe
	// favorites keeps per-user favorite identifiers in favoriting order.
	// Uniqueness is enforced on insert, never by deduplication afterwards.
	favorites map[int64][]int64

	nextUserID   int64
	nextRecipeID int64

	logger *logger.Logger
}

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore(logger *logger.Logger) *MemoryStore {
	logger.Debug().Msg("creating in-memory store")
	return &MemoryStore{
		users:     make(map[int64]models.User),
		recipes:   make(map[int64]models.Recipe),
		favorites: make(map[int64][]int64),
		logger:    logger,
	}
}

func (m *MemoryStore) now() time.Time {
	return time.Now().UTC()
}

// cloneRecipe returns a deep copy so callers can never alias the slices held
// inside the store.
func cloneRecipe(recipe models.Recipe) models.Recipe {
	clone := recipe
	clone.Ingredients = append([]string(nil), recipe.Ingredients...)
	clone.Instructions = append([]string(nil), recipe.Instructions...)
	return clone
}
