package domain

import (
	"fmt"
	"math"
	"strings"
)

// DistanceMode selects the metric used for grid distances.
type DistanceMode string

const (
	DistanceManhattan DistanceMode = "manhattan"
	DistanceEuclidean DistanceMode = "euclidean"
)

// The zone grid is fixed: columns A-F, rows 1-6.
const (
	GridColumns = 6
	GridRows    = 6
)

// DepotCode locates the fleet home base. Every trip starts and ends here.
const DepotCode = "A1"

// GridPoint is a validated grid code with its zero-indexed (column, row)
// coordinates. Immutable once parsed.
type GridPoint struct {
	Code string
	Col  int
	Row  int
}

// Depot returns the fixed fleet home-base point.
func Depot() GridPoint {
	return GridPoint{Code: DepotCode, Col: 0, Row: 0}
}

// ParseCode validates and parses a two-character grid code: one letter A-F
// followed by one digit 1-6. Case and surrounding whitespace are ignored.
func ParseCode(code string) (GridPoint, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 2 {
		return GridPoint{}, fmt.Errorf("parse grid code: %q is not a letter A-F followed by a digit 1-6", code)
	}

	col := int(c[0]) - 'A'
	row := int(c[1]) - '1'
	if col < 0 || col >= GridColumns || row < 0 || row >= GridRows {
		return GridPoint{}, fmt.Errorf("parse grid code: %q is outside the %dx%d grid", code, GridColumns, GridRows)
	}

	return GridPoint{Code: c, Col: col, Row: row}, nil
}

// Distance returns the travel distance between two grid points under the
// given metric, scaled by the cell size. Pure; symmetric in its arguments.
func Distance(from, to GridPoint, cellSize float64, mode DistanceMode) float64 {
	dc := float64(from.Col - to.Col)
	dr := float64(from.Row - to.Row)

	if mode == DistanceEuclidean {
		return cellSize * math.Sqrt(dc*dc+dr*dr)
	}
	return cellSize * (math.Abs(dc) + math.Abs(dr))
}
