package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics describes one search call: how many leaves were
// evaluated, how many interior nodes were expanded, and how long the
// call took. Experiments use the leaf count to show alpha-beta prunes
// without changing results.
type SearchMetrics struct {
	Leaves   int64
	Interior int64
	Duration time.Duration
}

type Collector interface {
	Start()
	AddLeaf()
	AddInterior()
	Complete() SearchMetrics
}

type collector struct {
	startTime time.Time
	leaves    atomic.Int64
	interior  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.leaves.Store(0)
	c.interior.Store(0)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddInterior() {
	c.interior.Add(1)
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Leaves:   c.leaves.Load(),
		Interior: c.interior.Load(),
		Duration: time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start()                  {}
func (c *dummyCollector) AddLeaf()                {}
func (c *dummyCollector) AddInterior()            {}
func (c *dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
