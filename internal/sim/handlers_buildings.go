package sim

import "github.com/dustin/go-humanize"

func (e *Engine) buyBuilding(s *State, a Action) *State {
	def, ok := e.Catalog.BuildingDef(a.BuildingID)
	if !ok {
		return s.reject("Purchase Failed", "No building with id '%s' is for sale.", a.BuildingID)
	}
	if def.IsUnique && s.Building(def.ID) != nil {
		return s.reject("Purchase Failed", "The company already owns a %s.", def.Name)
	}
	if s.Company.Assets < def.Cost {
		return s.reject("Purchase Failed", "Insufficient funds to buy %s.", def.Name)
	}
	s.Company.Assets -= def.Cost
	s.Buildings = append(s.Buildings, def)
	s.Company.EmployeeCapacity = capacityOf(s.Buildings)
	if s.Company.HeadquartersID == "" && def.Type == BuildingOffice {
		s.Company.HeadquartersID = def.ID
	}
	s.pushEvents(newEntry(s.Date, SentimentNeutral, "Property Acquired",
		"Bought %s for %s won.", def.Name, humanize.Comma(def.Cost)))
	return s
}

// sellBuilding sells an owned building for 80% of its original cost. The
// last office cannot be sold; a capacity shortfall after the sale forces
// layoffs from randomly chosen staffed departments.
func (e *Engine) sellBuilding(s *State, a Action) *State {
	b := s.Building(a.BuildingID)
	if b == nil {
		return s.reject("Sale Failed", "The company does not own building '%s'.", a.BuildingID)
	}
	if b.Type == BuildingOffice && s.countBuildingType(BuildingOffice) == 1 {
		return s.reject("Sale Failed", "The company's last office cannot be sold.")
	}

	sold := *b
	proceeds := sold.Cost * 80 / 100
	kept := s.Buildings[:0]
	for _, owned := range s.Buildings {
		if owned.ID != sold.ID {
			kept = append(kept, owned)
		}
	}
	s.Buildings = kept
	s.Company.EmployeeCapacity = capacityOf(s.Buildings)
	s.Company.Assets += proceeds

	var events []LogEntry
	if s.Company.Employees > s.Company.EmployeeCapacity {
		fired := e.layOff(s, s.Company.Employees-s.Company.EmployeeCapacity)
		s.Company.Employees -= fired
		events = append(events, newEntry(s.Date, SentimentNegative, "Restructuring",
			"%d employees were laid off due to lack of office space.", fired))
	}
	if sold.ID == s.Company.HeadquartersID {
		s.Company.HeadquartersID = ""
		for _, owned := range s.Buildings {
			if owned.Type == BuildingOffice {
				s.Company.HeadquartersID = owned.ID
				break
			}
		}
	}
	events = append(events, newEntry(s.Date, SentimentNeutral, "Property Sold",
		"Sold %s for %s won.", sold.Name, humanize.Comma(proceeds)))
	s.pushEvents(events...)
	return s
}

// layOff removes up to n employees one at a time from uniformly chosen
// departments that still have staff, returning how many actually left.
func (e *Engine) layOff(s *State, n int) int {
	fired := 0
	for fired < n {
		staffed := make([]*Department, 0, len(s.Departments))
		for i := range s.Departments {
			if s.Departments[i].Employees > 0 {
				staffed = append(staffed, &s.Departments[i])
			}
		}
		if len(staffed) == 0 {
			break
		}
		staffed[e.RNG.Intn(len(staffed))].Employees--
		fired++
	}
	return fired
}

func (s *State) countBuildingType(t BuildingType) int {
	n := 0
	for _, b := range s.Buildings {
		if b.Type == t {
			n++
		}
	}
	return n
}
