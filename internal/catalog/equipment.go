package catalog

import (
	"strings"

	"github.com/custodia-labs/scopegen/internal/core/domain"
)

// Canonical equipment names.
const (
	AirHandler          = "Air Handler"
	Boilers             = "Boilers"
	Condenser           = "Condenser"
	CoolingTowers       = "Cooling Towers"
	CRACIndoor          = "CRAC ID"
	CRACOutdoor         = "CRAC OD"
	FanCoil             = "Fan Coil"
	MiniSplits          = "Mini-Splits"
	Pumps               = "Pumps"
	RTUs                = "RTUs"
	WaterCooledChillers = "Water-Cooled Chillers"
)

// scopes is the equipment scope catalog in catalog order.
var scopes = []domain.EquipmentScope{
	{
		Name:   Boilers,
		Header: "Boilers:",
		Annual: "• Annual: Inspect burner assembly; test flame detection, fuel cut-off, low-water cutoff, and safety valves; " +
			"inspect fuel system; record operating pressures, gas settings, boiler input/output; calibrate controls; " +
			"run combustion analysis.",
		Quarterly: "• Quarterly: Test flame detection, operating control, flow switch, and fuel system; inspect pump operation; " +
			"blow down low-water cutoff; verify flame condition.",
	},
	{
		Name:   CoolingTowers,
		Header: "Cooling Towers:",
		Annual: "• Annual: Remove debris, flush basin, inspect/clean strainers, lubricate bearings, change gear reducer oil " +
			"(if equipped), inspect belts/pulleys, check electrical connections and controls, record motor amp draw, " +
			"verify float valve operation, inspect spray nozzles, check fill media.",
		Quarterly: "• Quarterly: Lubricate bearings, inspect belts/pulleys (if equipped), check controls, record amp draw, " +
			"verify float valve, inspect/clean spray nozzles.",
	},
	{
		Name:   Pumps,
		Header: "Pumps:",
		Annual: "• Annual: Verify pump identification, inspect coupling, check for vibration/noise, record motor RLA and " +
			"actual amps, inspect starter and connections, tighten electrical terminals, lubricate bearings (if applicable), " +
			"check motor alignment, record voltage, return to service.",
		Quarterly: "• Quarterly: Verify pump identification, inspect for vibration/noise, check coupling, record motor RLA " +
			"and amps, return to service.",
	},
	{
		Name:   AirHandler,
		Header: "Air Handlers:",
		Annual: "• Annual: Inspect and clean coils; replace or clean filters (if applicable); lubricate bearings; inspect " +
			"blower assembly for wear; check fan wheel alignment; inspect and tighten electrical connections; verify " +
			"damper operation; calibrate control sensors.",
		Quarterly: "• Quarterly: Inspect filters and clean/replace as needed; check coil condition; inspect and adjust belt " +
			"tension (if applicable); verify motor amperage and operating condition; inspect condensate pans and drains " +
			"for proper operation.",
	},
	{
		Name:   RTUs,
		Header: "Roof Top Units (RTUs):",
		Annual: "• Annual: Inspect and clean condenser and evaporator coils; replace or clean air filters (where applicable); " +
			"inspect and lubricate fan and motor bearings (if applicable); inspect blower assembly for alignment and wear; " +
			"inspect belts and pulleys for wear and proper tension (if equipped); inspect heat exchangers for cracks or " +
			"corrosion; check refrigerant charge, pressures, and superheat/subcooling; inspect condensate pans and drains, " +
			"clean and flush as needed; inspect electrical connections, contactors, relays, and capacitors; test safety " +
			"controls and high/low pressure switches; verify economizer operation and damper function (if installed); " +
			"record supply/return air temperatures, amperages, and voltages; calibrate thermostats and sensors as needed; " +
			"perform combustion analysis on gas-fired sections (if applicable).",
		Quarterly: "• Quarterly: Inspect and clean or replace filters as required; inspect coil condition and clean as needed; " +
			"inspect belts/pulleys and adjust or replace as necessary; check fan and blower motor operation, record " +
			"amperage draws; inspect and tighten electrical connections; inspect condensate drains for blockage and proper " +
			"operation; record refrigerant pressures and system temperatures (if accessible); verify overall unit operation " +
			"within manufacturer specifications; inspect cabinet condition, economizer (if applicable), and access panels.",
	},
	{
		Name:   CRACIndoor,
		Header: "Computer Room Air Conditioners – Indoor Units (CRAC ID):",
		Annual: "• Annual: Inspect and clean evaporator coil; replace air filters; inspect blower assembly, bearings, and " +
			"belts (if equipped); inspect humidifier canister/pan and clean or replace as needed; test reheat elements; " +
			"check refrigerant pressures and superheat; inspect condensate pump and drains; tighten electrical " +
			"connections; verify controller set points, alarms, and remote monitoring; record temperatures and amperages.",
		Quarterly: "• Quarterly: Replace or clean filters; inspect coil condition; check humidifier operation; verify " +
			"condensate drainage; record refrigerant pressures, supply/return temperatures, and amperages; review and " +
			"clear controller alarm history.",
	},
	{
		Name:   CRACOutdoor,
		Header: "Computer Room Air Conditioners – Outdoor Units (CRAC OD):",
		Annual: "• Annual: Clean condenser coil; inspect fan motors, blades, and bearings; inspect contactors, capacitors, " +
			"and electrical connections; verify head pressure control and fan cycling; check refrigerant lines and " +
			"insulation; record voltages and amperages.",
		Quarterly: "• Quarterly: Inspect condenser coil and remove debris; verify fan operation; check electrical " +
			"connections; record refrigerant pressures and amperages.",
	},
	{
		Name:   FanCoil,
		Header: "Fan Coil Units:",
		Annual: "• Annual: Clean coil; replace or clean filters; lubricate fan motor (if applicable); inspect blower " +
			"wheel; check control valve operation; inspect and clean condensate pan and drain; tighten electrical " +
			"connections; verify thermostat operation.",
		Quarterly: "• Quarterly: Inspect filters and replace as needed; check coil condition; verify fan and control " +
			"valve operation; inspect condensate pan and drain.",
	},
	{
		Name:   MiniSplits,
		Header: "Ductless Mini-Split Systems:",
		Annual: "• Annual: Clean indoor coil and blower wheel; clean or replace filters; clean outdoor condenser coil; " +
			"check refrigerant pressures; inspect line set insulation; flush condensate line; tighten electrical " +
			"connections; verify remote/controller operation; record amperages.",
		Quarterly: "• Quarterly: Clean filters; inspect indoor and outdoor coils; verify condensate drainage; confirm " +
			"heating/cooling operation.",
	},
	{
		Name:   WaterCooledChillers,
		Header: "Water-Cooled Chillers:",
		Annual: "• Annual: Inspect and brush condenser tubes (as required); perform oil analysis; check refrigerant " +
			"charge and perform leak check; inspect starter, contactors, and electrical connections; calibrate controls " +
			"and safeties; verify flow switches; record operating log (pressures, temperatures, approach, amperages); " +
			"inspect insulation and vibration isolation.",
		Quarterly: "• Quarterly: Record operating log; check oil level and condition; inspect for refrigerant and water " +
			"leaks; verify control set points and safeties; review alarm history.",
	},
	{
		Name:   Condenser,
		Header: "Condensing Units:",
		Annual: "• Annual: Clean condenser coil; inspect fan motor and blade; check refrigerant pressures, superheat, " +
			"and subcooling; inspect contactors and capacitors; tighten electrical connections; inspect line set " +
			"insulation; record voltages and amperages.",
		Quarterly: "• Quarterly: Inspect coil and remove debris; verify fan operation; record refrigerant pressures and " +
			"amperages; check electrical connections.",
	},
}

var (
	scopeIndex = buildScopeIndex()
	aliases    = buildAliases()
)

// manualAliases maps abbreviations and common spellings to canonical names.
var manualAliases = map[string]string{
	"ahu":           AirHandler,
	"ahus":          AirHandler,
	"air handlers":  AirHandler,
	"rtu":           RTUs,
	"crac id":       CRACIndoor,
	"crac od":       CRACOutdoor,
	"boiler":        Boilers,
	"pump":          Pumps,
	"cooling tower": CoolingTowers,
	"fan coils":     FanCoil,
	"mini split":    MiniSplits,
	"mini-split":    MiniSplits,
	"chiller":       WaterCooledChillers,
	"chillers":      WaterCooledChillers,
	"condensers":    Condenser,
}

func buildScopeIndex() map[string]int {
	idx := make(map[string]int, len(scopes))
	for i, s := range scopes {
		idx[s.Name] = i
	}
	return idx
}

func buildAliases() map[string]string {
	m := make(map[string]string, len(scopes)+len(manualAliases))
	for _, s := range scopes {
		m[strings.ToLower(s.Name)] = s.Name
	}
	for k, v := range manualAliases {
		m[k] = v
	}
	return m
}

// Canonicalize maps a free-text equipment name to its canonical name.
// The second result is false when no mapping exists; callers exclude such
// rows from equipment-specific scope.
func Canonicalize(raw string) (string, bool) {
	name, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]
	return name, ok
}

// Scope returns the scope wording for a canonical name.
func Scope(name string) (domain.EquipmentScope, bool) {
	i, ok := scopeIndex[name]
	if !ok {
		return domain.EquipmentScope{}, false
	}
	return scopes[i], true
}

// Names returns every canonical equipment name in catalog order.
func Names() []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = s.Name
	}
	return out
}

// Position returns the catalog position of name, or -1.
func Position(name string) int {
	if i, ok := scopeIndex[name]; ok {
		return i
	}
	return -1
}
