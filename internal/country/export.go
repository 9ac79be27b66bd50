package country

import "github.com/OCAP2/missionbuilder/pkg/core"

// Dict exports the country in the scenario table layout. Group kinds without
// groups are left out entirely; the others map 1-based insertion order to the
// group's own export.
func (c *Country) Dict() map[string]any {
	d := map[string]any{
		"name": c.Name,
		"id":   c.id,
	}
	addGroups(d, "vehicle", c.vehicleGroups)
	addGroups(d, "ship", c.shipGroups)
	addGroups(d, "plane", c.planeGroups)
	addGroups(d, "helicopter", c.helicopterGroups)
	addGroups(d, "static", c.staticGroups)
	return d
}

func addGroups[G core.Group](d map[string]any, key string, groups []G) {
	if len(groups) == 0 {
		return
	}
	table := make(map[int]any, len(groups))
	for i, g := range groups {
		table[i+1] = g.Dict()
	}
	d[key] = map[string]any{"group": table}
}
