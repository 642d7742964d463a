package worlds

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/pixil98/go-adventure/internal/game"
	"github.com/pixil98/go-adventure/internal/storage"
	"gopkg.in/yaml.v3"
)

//go:embed basic.yaml
var basicWorld []byte

type definition struct {
	Rooms []game.RoomRecord `yaml:"rooms"`
}

// Default returns the definition of the built-in world.
func Default() ([]game.RoomRecord, error) {
	return Parse(basicWorld)
}

// Parse reads a world definition document of the form {rooms: [...]}.
func Parse(data []byte) ([]game.RoomRecord, error) {
	var def definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing world definition: %w", err)
	}
	return def.Rooms, nil
}

// Load reads a world kept as one room asset per file under path.
func Load(path string) ([]game.RoomRecord, error) {
	store, err := storage.NewFileStore[*game.RoomRecord](path)
	if err != nil {
		return nil, fmt.Errorf("loading rooms from %s: %w", path, err)
	}
	return FromStore(store), nil
}

// FromStore collects every room in store, ordered by room id.
func FromStore(store storage.Storer[*game.RoomRecord]) []game.RoomRecord {
	all := store.GetAll()
	recs := make([]game.RoomRecord, 0, len(all))
	for _, r := range all {
		recs = append(recs, *r)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].ID < recs[j].ID
	})
	return recs
}
