package registry

import (
	"fmt"
	"slices"
	"strings"
)

// CalibrationNodes is the number of leading node ids used only to seed the
// latency baseline.
const CalibrationNodes = 3

// OnboardingNodes is the number of leading node ids that always request a
// body-sensation report and are always unlocked on the dashboard.
const OnboardingNodes = 5

// Choice is one selectable answer of a node.
type Choice struct {
	ID      string    `json:"id"`
	TextKey string    `json:"textKey"`
	Belief  BeliefKey `json:"beliefKey"`
}

// Node is a single question in the catalog.
type Node struct {
	ID        int       `json:"id"`
	Key       string    `json:"key"`
	Domain    DomainKey `json:"domain"`
	TitleKey  string    `json:"titleKey"`
	DescKey   string    `json:"descKey"`
	Intensity int       `json:"intensity"`
	Choices   []Choice  `json:"choices"`
}

// IsCalibration reports whether the node only seeds the latency baseline.
func (n Node) IsCalibration() bool {
	return IsCalibrationID(n.ID)
}

// IsCalibrationID reports whether an absolute node id is a calibration node.
func IsCalibrationID(id int) bool {
	return id < CalibrationNodes
}

// Registry is the immutable node catalog with precomputed indices.
type Registry struct {
	domains  []Domain
	byDomain map[DomainKey]int
	nodes    []Node
}

// New places the domains on the id line in declaration order and builds
// every node from configs, falling back to the default config for keys the
// catalog does not define.
func New(specs []DomainSpec, configs map[string]NodeConfig) (*Registry, error) {
	if err := validate(specs, configs); err != nil {
		return nil, err
	}

	r := &Registry{
		byDomain: make(map[DomainKey]int, len(specs)),
	}

	start := 0
	for i, spec := range specs {
		d := Domain{Key: spec.Key, Count: spec.Count, StartID: start}
		r.domains = append(r.domains, d)
		r.byDomain[spec.Key] = i

		for idx := 0; idx < spec.Count; idx++ {
			r.nodes = append(r.nodes, buildNode(d, idx, configs))
		}
		start += spec.Count
	}

	return r, nil
}

func buildNode(d Domain, idx int, configs map[string]NodeConfig) Node {
	id := d.StartID + idx
	key := fmt.Sprintf("%s_%d", d.Key, idx)
	cfg, ok := configs[key]
	if !ok {
		cfg = defaultNodeConfig
	}

	base := "scenes." + key
	choices := make([]Choice, 0, len(cfg.Beliefs))
	for i, b := range cfg.Beliefs {
		choices = append(choices, Choice{
			ID:      fmt.Sprintf("%d_c%d", id, i+1),
			TextKey: fmt.Sprintf("%s.c%d", base, i+1),
			Belief:  b,
		})
	}

	return Node{
		ID:        id,
		Key:       key,
		Domain:    d.Key,
		TitleKey:  base + ".title",
		DescKey:   base + ".desc",
		Intensity: cfg.Intensity,
		Choices:   choices,
	}
}

func validate(specs []DomainSpec, configs map[string]NodeConfig) error {
	var errs []string

	seen := make(map[DomainKey]bool, len(specs))
	for _, s := range specs {
		if seen[s.Key] {
			errs = append(errs, fmt.Sprintf("duplicate domain %q", s.Key))
		}
		seen[s.Key] = true
		if s.Count <= 0 {
			errs = append(errs, fmt.Sprintf("domain %q: count must be > 0, got %d", s.Key, s.Count))
		}
	}

	for key, cfg := range configs {
		if len(cfg.Beliefs) == 0 {
			errs = append(errs, fmt.Sprintf("node %q has no choices", key))
		}
		for _, b := range cfg.Beliefs {
			if !b.IsKnown() {
				errs = append(errs, fmt.Sprintf("node %q references unknown belief %q", key, b))
			}
		}
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("registry validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Domains returns the placed domains in declaration order.
func (r *Registry) Domains() []Domain {
	return slices.Clone(r.domains)
}

// Domain returns the placed domain for key.
func (r *Registry) Domain(key DomainKey) (Domain, bool) {
	i, ok := r.byDomain[key]
	if !ok {
		return Domain{}, false
	}
	return r.domains[i], true
}

// DomainOf returns the domain owning an absolute node id.
func (r *Registry) DomainOf(id int) (DomainKey, bool) {
	for _, d := range r.domains {
		if d.Contains(id) {
			return d.Key, true
		}
	}
	return "", false
}

// Node returns the node with the given absolute id.
func (r *Registry) Node(id int) (Node, bool) {
	if id < 0 || id >= len(r.nodes) {
		return Node{}, false
	}
	return r.nodes[id], true
}

// Nodes returns every node ordered by absolute id.
func (r *Registry) Nodes() []Node {
	return slices.Clone(r.nodes)
}

// TotalNodes is the size of the id line.
func (r *Registry) TotalNodes() int {
	return len(r.nodes)
}

var defaultRegistry *Registry

func init() {
	r, err := New(DefaultDomains(), DefaultNodeConfigs())
	if err != nil {
		panic(err)
	}
	defaultRegistry = r
}

// Default returns the built-in catalog.
func Default() *Registry {
	return defaultRegistry
}
