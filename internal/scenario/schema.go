package scenario

import (
	"github.com/hashicorp/hcl/v2"
)

// Block types of a scenario file.
const (
	blockLocals     = "locals"
	blockCity       = "city"
	blockRoad       = "road"
	blockRemoveCity = "remove_city"
	blockRemoveRoad = "remove_road"
	blockPath       = "path"
)

// fileSchema lists the top-level blocks and their labels.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: blockLocals},
		{Type: blockCity, LabelNames: []string{"name"}},
		{Type: blockRoad, LabelNames: []string{"from", "to"}},
		{Type: blockRemoveCity, LabelNames: []string{"name"}},
		{Type: blockRemoveRoad, LabelNames: []string{"from", "to"}},
		{Type: blockPath, LabelNames: []string{"from", "to"}},
	},
}

// hclCity is the body of a city block.
type hclCity struct {
	At          []float64 `hcl:"at"`
	ExpectError *string   `hcl:"expect_error,optional"`
}

// hclOp is the body of road, remove_city and remove_road blocks.
type hclOp struct {
	ExpectError *string `hcl:"expect_error,optional"`
}

// hclPath is the body of a path block.
type hclPath struct {
	ExpectLength *float64   `hcl:"expect_length,optional"`
	Tolerance    *float64   `hcl:"tolerance,optional"`
	ExpectPath   [][]string `hcl:"expect_path,optional"`
	ExpectError  *string    `hcl:"expect_error,optional"`
	Policy       *string    `hcl:"policy,optional"`
	Print        bool       `hcl:"print,optional"`
}
