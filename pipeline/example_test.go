package pipeline_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/assortment/coverage"
	"github.com/katalvlaran/assortment/partition"
	"github.com/katalvlaran/assortment/pipeline"
)

// ExamplePipeline_Run shows a refinement failure being absorbed.
func ExamplePipeline_Run() {
	rows := make([][]float64, 10)
	for p := range rows {
		rows[p] = []float64{float64(p % 3), float64(p % 4), float64(p % 5)}
	}
	s, _ := coverage.NewScoresFromRows(rows)

	broken := partition.RefinerFunc(func(context.Context, *coverage.Scores, partition.Partition, []int) (partition.Partition, error) {
		return partition.Partition{}, errors.New("no clusters")
	})
	cfg := pipeline.DefaultConfig()
	cfg.K = 2
	p, _ := pipeline.New(s, cfg, pipeline.WithRefiner("kmeans", broken))

	rep, err := p.Run(context.Background())
	fmt.Println("err:", err)
	for _, st := range rep.Stages {
		fmt.Println(st.Name, st.OK(), st.FellBack)
	}
	fmt.Println("final size:", len(rep.Final()))
	// Output:
	// err: <nil>
	// baseline true false
	// sampling true false
	// kmeans false true
	// final size: 2
}
