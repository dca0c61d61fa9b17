package records

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// DefaultCount is the size of the generated dataset when none is configured.
const DefaultCount = 500

// Category and status vocabularies used by the generator.
//
//nolint:gochecknoglobals // Fixed vocabularies.
var (
	Categories = []string{
		"Electronics",
		"Clothing",
		"Books",
		"Home & Garden",
		"Sports",
		"Toys",
		"Food & Beverage",
		"Health & Beauty",
	}

	Statuses = []string{"Active", "Inactive", "Pending", "Archived"}

	productNames = []string{
		"Premium Wireless Headphones",
		"Cotton T-Shirt",
		"The Great Novel",
		"Garden Tools Set",
		"Basketball",
		"Building Blocks",
		"Organic Coffee Beans",
		"Face Moisturizer",
		"Laptop Stand",
		"Running Shoes",
		"Mystery Thriller Book",
		"Plant Pot",
		"Yoga Mat",
		"Puzzle Game",
		"Green Tea",
		"Hair Shampoo",
		"USB Cable",
		"Winter Jacket",
		"Science Fiction Novel",
		"Kitchen Utensils",
	}

	epoch = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// DateLayout is the CreatedAt format.
const DateLayout = "2006-01-02"

// FormatID renders the 1-based index as a record ID, e.g. REC-00042.
func FormatID(index int) string {
	return fmt.Sprintf("REC-%05d", index)
}

// Generate returns count synthetic records. The same seed and now always
// produce the same records. Creation dates fall between 2022-01-01 and now.
func Generate(count int, seed uint64, now time.Time) []Record {
	if count <= 0 {
		return []Record{}
	}

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) //nolint:gosec // Synthetic data, not security sensitive.
	span := now.UTC().Sub(epoch)

	out := make([]Record, 0, count)
	for i := 1; i <= count; i++ {
		created := epoch
		if span > 0 {
			created = epoch.Add(time.Duration(rng.Int64N(int64(span))))
		}
		out = append(out, Record{
			ID:        FormatID(i),
			Name:      fmt.Sprintf("%s %d", pick(rng, productNames), i),
			Category:  pick(rng, Categories),
			Status:    pick(rng, Statuses),
			CreatedAt: created.Format(DateLayout),
		})
	}
	return out
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
