package roster

import (
	"math/rand"
	"strings"
)

// Role tags recognized by the assignment pools, highest priority first. A
// person holding several tags joins only the pool of the first tag that
// matches in this order.
const (
	RoleManager    = "manager"
	RoleSeniorLead = "senior_lead"
	RoleRML        = "rml"
	RoleLabTech    = "labtech"
	RoleLead       = "lead"
	RoleTester     = "tester"
)

// RolePriority orders the pools used when partitioning available personnel.
var RolePriority = []string{RoleManager, RoleSeniorLead, RoleRML, RoleLabTech, RoleLead, RoleTester}

var roleDisplayNames = map[string]string{
	RoleManager:    "Manager",
	RoleSeniorLead: "Senior Lead",
	RoleRML:        "RML",
	RoleLabTech:    "Lab Tech",
	RoleLead:       "Lead",
	RoleTester:     "Tester",
}

// Candidate is a member of a role pool.
type Candidate struct {
	ID   int64
	Name string
}

// PoolMember is the input to pool partitioning: a personnel row reduced to
// the fields assignment needs. Role carries the comma-joined tag list.
type PoolMember struct {
	ID   int64
	Name string
	Role string
}

// ShuffleFunc permutes n elements via swap. Production code passes
// rand.Shuffle; tests substitute a deterministic permutation.
type ShuffleFunc func(n int, swap func(i, j int))

// NormalizeRole canonicalizes a role tag: trimmed, lowercased, inner spaces
// collapsed to underscores so "Senior Lead" and "senior_lead" match.
func NormalizeRole(role string) string {
	tag := strings.ToLower(strings.TrimSpace(role))
	return strings.Join(strings.Fields(tag), "_")
}

// RoleTags splits a comma-joined role list into normalized tags.
func RoleTags(role string) []string {
	parts := strings.Split(role, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := NormalizeRole(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// DisplayRole renders a role tag in its human-readable form, used by the
// exhaustion sentinel.
func DisplayRole(role string) string {
	tag := NormalizeRole(role)
	if display, ok := roleDisplayNames[tag]; ok {
		return display
	}
	words := strings.Split(tag, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// ExhaustedSentinel is the literal slot text assigned when a role pool runs
// out of people.
func ExhaustedSentinel(role string) string {
	return "No " + DisplayRole(role) + " Available"
}

// PartitionByRole splits available personnel into disjoint pools keyed by
// role tag. Each person lands in exactly one pool: the first of their tags
// matching RolePriority. People with no recognized tag are left out.
func PartitionByRole(members []PoolMember) map[string][]Candidate {
	pools := make(map[string][]Candidate, len(RolePriority))
	for _, member := range members {
		tags := RoleTags(member.Role)
		for _, pool := range RolePriority {
			if containsTag(tags, pool) {
				pools[pool] = append(pools[pool], Candidate{ID: member.ID, Name: member.Name})
				break
			}
		}
	}
	return pools
}

// Assign produces one random, collision-free assignment of pool members to
// team slots. Slot order is preserved; blank-role slots keep their current
// name; an exhausted pool yields the sentinel text instead of a blank. No
// candidate id fills more than one slot across all teams.
//
// The input teams are not mutated; the shuffled copy is returned.
func Assign(teams []TeamSnapshot, pools map[string][]Candidate, shuffle ShuffleFunc) []TeamSnapshot {
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	shuffled := make(map[string][]Candidate, len(pools))
	for role, pool := range pools {
		cp := make([]Candidate, len(pool))
		copy(cp, pool)
		if len(cp) > 1 {
			shuffle(len(cp), func(i, j int) { cp[i], cp[j] = cp[j], cp[i] })
		}
		shuffled[role] = cp
	}

	assigned := make(map[int64]bool)
	cursor := make(map[string]int, len(shuffled))

	out := CloneTeams(teams)
	for t := range out {
		for s := range out[t].Personnel {
			role := NormalizeRole(out[t].Personnel[s].Role)
			if role == "" {
				continue
			}
			candidate, ok := nextCandidate(shuffled[role], cursor, assigned, role)
			if !ok {
				out[t].Personnel[s].Name = ExhaustedSentinel(role)
				continue
			}
			assigned[candidate.ID] = true
			out[t].Personnel[s].Name = candidate.Name
		}
	}
	return out
}

func nextCandidate(pool []Candidate, cursor map[string]int, assigned map[int64]bool, role string) (Candidate, bool) {
	for cursor[role] < len(pool) {
		candidate := pool[cursor[role]]
		cursor[role]++
		if assigned[candidate.ID] {
			continue
		}
		return candidate, true
	}
	return Candidate{}, false
}

func containsTag(tags []string, target string) bool {
	for _, tag := range tags {
		if tag == target {
			return true
		}
	}
	return false
}
