package catalog

import "github.com/custodia-labs/scopegen/internal/core/domain"

// Equipment category sets used by the tagged clauses.
var (
	CoilEquipment = domain.NewEquipmentSet(
		AirHandler, RTUs, CRACIndoor, CRACOutdoor, FanCoil, MiniSplits,
		WaterCooledChillers, Condenser, CoolingTowers,
	)
	RefrigerantEquipment = domain.NewEquipmentSet(
		AirHandler, RTUs, CRACIndoor, CRACOutdoor, FanCoil, MiniSplits,
		WaterCooledChillers, Condenser,
	)
	BoilerEquipment   = domain.NewEquipmentSet(Boilers)
	HydronicEquipment = domain.NewEquipmentSet(
		Pumps, Boilers, WaterCooledChillers, CoolingTowers, FanCoil, AirHandler,
	)
)

func always(domain.EquipmentSet) bool { return true }

func anyOf(category domain.EquipmentSet) func(domain.EquipmentSet) bool {
	return func(present domain.EquipmentSet) bool {
		return present.Intersects(category)
	}
}

// predicates maps each tag to its applicability rule.
var predicates = map[domain.ClauseTag]func(domain.EquipmentSet) bool{
	domain.ClauseDefault:     always,
	domain.ClauseCoil:        anyOf(CoilEquipment),
	domain.ClauseRefrigerant: anyOf(RefrigerantEquipment),
	domain.ClauseBoiler:      anyOf(BoilerEquipment),
	domain.ClauseHydronic:    anyOf(HydronicEquipment),
}

func clause(tag domain.ClauseTag, text string) domain.ServiceClause {
	return domain.ServiceClause{Tag: tag, Text: text, Applies: predicates[tag]}
}

// clauses is the master list of general services in display order.
var clauses = []domain.ServiceClause{
	clause(domain.ClauseDefault, "Provide preventive maintenance and inspection labor, materials (filters, oil, grease, "+
		"rags where applicable), and related expenses."),
	clause(domain.ClauseDefault, "Perform maintenance in accordance with manufacturer recommendations for covered equipment."),
	clause(domain.ClauseDefault, "Replace or clean filters when and where applicable (quarterly)."),
	clause(domain.ClauseCoil, "Clean condenser and evaporator coils annually, or as manufacturer guidelines require."),
	clause(domain.ClauseRefrigerant, "Monitor compressor operating pressures quarterly (if accessible)."),
	clause(domain.ClauseDefault, "Inspect belt tension and wear quarterly where belt-driven assemblies are present."),
	clause(domain.ClauseDefault, "Test electrical components and connections quarterly."),
	clause(domain.ClauseDefault, "Provide seasonal changeover services (spring and/or fall) where applicable."),
	clause(domain.ClauseBoiler, "Monitor boilers for proper temperatures and pressures."),
	clause(domain.ClauseBoiler, "Check boilers for leaks and sediment buildup."),
	clause(domain.ClauseHydronic, "Inspect pumps listed in the equipment inventory, or directly associated with covered "+
		"assets, for leaks, vibration, and audible wear."),
	clause(domain.ClauseRefrigerant, "Provide refrigerant conservation services, including certified leak detection, "+
		"recovery, and recycling to comply with the Clean Air Act and all applicable state/local regulations."),
}

// Clauses returns the general service clauses in catalog order.
func Clauses() []domain.ServiceClause {
	out := make([]domain.ServiceClause, len(clauses))
	copy(out, clauses)
	return out
}
