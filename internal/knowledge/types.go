package knowledge

// DefaultTopK is the number of passages returned when the caller asks for none.
const DefaultTopK = 2

// Document is one destination passage in the corpus.
type Document struct {
	ID          string `yaml:"id" json:"id"`
	Destination string `yaml:"destination" json:"destination"`
	Text        string `yaml:"text" json:"text"`
}

// Corpus is the on-disk corpus layout.
type Corpus struct {
	Documents []Document `yaml:"documents"`
}

// Path labels which retrieval path answered a query.
type Path string

const (
	PathSemantic Path = "semantic"
	PathKeyword  Path = "keyword"
	PathEmpty    Path = "empty"
)
