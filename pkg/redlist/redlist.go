// Package redlist contains entities of the IUCN Red List domain and the
// pure functions that convert API documents into tabular rows.
//
// This package has no I/O. Remote access is described by the Client
// interface and implemented in internal/ioapi.
package redlist

import "context"

// Client gives access to the two Red List endpoints gnredlist needs.
type Client interface {
	// SearchSpecies runs a phrase-prefix search for a scientific or
	// common name and returns candidate species in the order of their
	// relevance.
	SearchSpecies(ctx context.Context, name string) ([]SearchHit, error)

	// Assessment returns the document of one assessment by its id.
	Assessment(ctx context.Context, id string) (*AssessmentDoc, error)
}

// Species is a name from the user's list resolved to Red List ids.
type Species struct {
	// Name is the name as it appears in the species list.
	Name string

	// Canonical is the canonical form of Name used for search and for
	// exact matching of search results. It equals Name unless Name is
	// a species or infraspecies name.
	Canonical string

	// ID is the identifier of the current assessment of the species.
	ID string

	// SisID is the Species Information Service taxon identifier.
	SisID string
}

// SearchHit is one candidate returned by the search endpoint.
type SearchHit struct {
	ID             string
	SisID          string
	ScientificName string
}

// ThreatNode is a node of the IUCN threat classification scheme.
type ThreatNode struct {
	Label    string
	Children []ThreatNode
}

// PreviousAssessment points to an earlier assessment of the same species.
type PreviousAssessment struct {
	ID   string
	Year string
}

// AssessmentDoc is the subset of an assessment document used by
// gnredlist. Missing nested data is represented by empty values.
type AssessmentDoc struct {
	// ID of the assessment.
	ID string

	// Date is the textual assessment date, the year is at its end.
	Date string

	// CitationFooter starts with the publication year.
	CitationFooter string

	Kingdom string
	Class   string

	Category        string
	CategoryCode    string
	PopulationTrend string

	// Systems are the habitat systems (Terrestrial, Marine...).
	Systems []string

	// Habitats are detailed habitat labels.
	Habitats []string

	Threats  []ThreatNode
	Previous []PreviousAssessment
}

// Assessment is one dated evaluation of a species.
type Assessment struct {
	// Year of the assessment, 4 digits.
	Year string

	// ID of the assessment.
	ID string

	Category        string
	CategoryCode    string
	PopulationTrend string

	// Habitat1 is the primary habitat system, empty if unknown.
	Habitat1 string

	// Habitat2 are the detailed habitats.
	Habitat2 []string

	// Threats are flattened threat paths.
	Threats []string
}
