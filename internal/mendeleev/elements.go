package mendeleev

import "strconv"

// Element is the atomic number of a cabinet. NoCabinet marks a gap in the grid.
type Element int

// NoCabinet is the sentinel for grid cells without a cabinet.
const NoCabinet Element = 0

// Elements 1..118.
const (
	H  Element = 1   // Hydrogen
	He Element = 2   // Helium
	Li Element = 3   // Lithium
	Be Element = 4   // Beryllium
	B  Element = 5   // Boron
	C  Element = 6   // Carbon
	N  Element = 7   // Nitrogen
	O  Element = 8   // Oxygen
	F  Element = 9   // Fluorine
	Ne Element = 10  // Neon
	Na Element = 11  // Sodium
	Mg Element = 12  // Magnesium
	Al Element = 13  // Aluminum
	Si Element = 14  // Silicon
	P  Element = 15  // Phosphorus
	S  Element = 16  // Sulfur
	Cl Element = 17  // Chlorine
	Ar Element = 18  // Argon
	K  Element = 19  // Potassium
	Ca Element = 20  // Calcium
	Sc Element = 21  // Scandium
	Ti Element = 22  // Titanium
	V  Element = 23  // Vanadium
	Cr Element = 24  // Chromium
	Mn Element = 25  // Manganese
	Fe Element = 26  // Iron
	Co Element = 27  // Cobalt
	Ni Element = 28  // Nickel
	Cu Element = 29  // Copper
	Zn Element = 30  // Zinc
	Ga Element = 31  // Gallium
	Ge Element = 32  // Germanium
	As Element = 33  // Arsenic
	Se Element = 34  // Selenium
	Br Element = 35  // Bromine
	Kr Element = 36  // Krypton
	Rb Element = 37  // Rubidium
	Sr Element = 38  // Strontium
	Y  Element = 39  // Yttrium
	Zr Element = 40  // Zirconium
	Nb Element = 41  // Niobium
	Mo Element = 42  // Molybdenum
	Tc Element = 43  // Technetium
	Ru Element = 44  // Ruthenium
	Rh Element = 45  // Rhodium
	Pd Element = 46  // Palladium
	Ag Element = 47  // Silver
	Cd Element = 48  // Cadmium
	In Element = 49  // Indium
	Sn Element = 50  // Tin
	Sb Element = 51  // Antimony
	Te Element = 52  // Tellurium
	I  Element = 53  // Iodine
	Xe Element = 54  // Xenon
	Cs Element = 55  // Cesium
	Ba Element = 56  // Barium
	La Element = 57  // Lanthanum
	Ce Element = 58  // Cerium
	Pr Element = 59  // Praseodymium
	Nd Element = 60  // Neodymium
	Pm Element = 61  // Promethium
	Sm Element = 62  // Samarium
	Eu Element = 63  // Europium
	Gd Element = 64  // Gadolinium
	Tb Element = 65  // Terbium
	Dy Element = 66  // Dysprosium
	Ho Element = 67  // Holmium
	Er Element = 68  // Erbium
	Tm Element = 69  // Thulium
	Yb Element = 70  // Ytterbium
	Lu Element = 71  // Lutetium
	Hf Element = 72  // Hafnium
	Ta Element = 73  // Tantalum
	W  Element = 74  // Tungsten
	Re Element = 75  // Rhenium
	Os Element = 76  // Osmium
	Ir Element = 77  // Iridium
	Pt Element = 78  // Platinum
	Au Element = 79  // Gold
	Hg Element = 80  // Mercury
	Tl Element = 81  // Thallium
	Pb Element = 82  // Lead
	Bi Element = 83  // Bismuth
	Po Element = 84  // Polonium
	At Element = 85  // Astatine
	Rn Element = 86  // Radon
	Fr Element = 87  // Francium
	Ra Element = 88  // Radium
	Ac Element = 89  // Actinium
	Th Element = 90  // Thorium
	Pa Element = 91  // Protactinium
	U  Element = 92  // Uranium
	Np Element = 93  // Neptunium
	Pu Element = 94  // Plutonium
	Am Element = 95  // Americium
	Cm Element = 96  // Curium
	Bk Element = 97  // Berkelium
	Cf Element = 98  // Californium
	Es Element = 99  // Einsteinium
	Fm Element = 100 // Fermium
	Md Element = 101 // Mendelevium
	No Element = 102 // Nobelium
	Lr Element = 103 // Lawrencium
	Rf Element = 104 // Rutherfordium
	Db Element = 105 // Dubnium
	Sg Element = 106 // Seaborgium
	Bh Element = 107 // Bohrium
	Hs Element = 108 // Hassium
	Mt Element = 109 // Meitnerium
	Ds Element = 110 // Darmstadtium
	Rg Element = 111 // Roentgenium
	Cn Element = 112 // Copernicium
	Nh Element = 113 // Nihonium
	Fl Element = 114 // Flerovium
	Mc Element = 115 // Moscovium
	Lv Element = 116 // Livermorium
	Ts Element = 117 // Tennessine
	Og Element = 118 // Oganesson
)

// MaxElement is the highest element number a cabinet can carry.
const MaxElement = Og

type elementInfo struct {
	symbol string
	name   string
}

var elementInfos = [MaxElement + 1]elementInfo{
	H:  {"H", "Hydrogen"},
	He: {"He", "Helium"},
	Li: {"Li", "Lithium"},
	Be: {"Be", "Beryllium"},
	B:  {"B", "Boron"},
	C:  {"C", "Carbon"},
	N:  {"N", "Nitrogen"},
	O:  {"O", "Oxygen"},
	F:  {"F", "Fluorine"},
	Ne: {"Ne", "Neon"},
	Na: {"Na", "Sodium"},
	Mg: {"Mg", "Magnesium"},
	Al: {"Al", "Aluminum"},
	Si: {"Si", "Silicon"},
	P:  {"P", "Phosphorus"},
	S:  {"S", "Sulfur"},
	Cl: {"Cl", "Chlorine"},
	Ar: {"Ar", "Argon"},
	K:  {"K", "Potassium"},
	Ca: {"Ca", "Calcium"},
	Sc: {"Sc", "Scandium"},
	Ti: {"Ti", "Titanium"},
	V:  {"V", "Vanadium"},
	Cr: {"Cr", "Chromium"},
	Mn: {"Mn", "Manganese"},
	Fe: {"Fe", "Iron"},
	Co: {"Co", "Cobalt"},
	Ni: {"Ni", "Nickel"},
	Cu: {"Cu", "Copper"},
	Zn: {"Zn", "Zinc"},
	Ga: {"Ga", "Gallium"},
	Ge: {"Ge", "Germanium"},
	As: {"As", "Arsenic"},
	Se: {"Se", "Selenium"},
	Br: {"Br", "Bromine"},
	Kr: {"Kr", "Krypton"},
	Rb: {"Rb", "Rubidium"},
	Sr: {"Sr", "Strontium"},
	Y:  {"Y", "Yttrium"},
	Zr: {"Zr", "Zirconium"},
	Nb: {"Nb", "Niobium"},
	Mo: {"Mo", "Molybdenum"},
	Tc: {"Tc", "Technetium"},
	Ru: {"Ru", "Ruthenium"},
	Rh: {"Rh", "Rhodium"},
	Pd: {"Pd", "Palladium"},
	Ag: {"Ag", "Silver"},
	Cd: {"Cd", "Cadmium"},
	In: {"In", "Indium"},
	Sn: {"Sn", "Tin"},
	Sb: {"Sb", "Antimony"},
	Te: {"Te", "Tellurium"},
	I:  {"I", "Iodine"},
	Xe: {"Xe", "Xenon"},
	Cs: {"Cs", "Cesium"},
	Ba: {"Ba", "Barium"},
	La: {"La", "Lanthanum"},
	Ce: {"Ce", "Cerium"},
	Pr: {"Pr", "Praseodymium"},
	Nd: {"Nd", "Neodymium"},
	Pm: {"Pm", "Promethium"},
	Sm: {"Sm", "Samarium"},
	Eu: {"Eu", "Europium"},
	Gd: {"Gd", "Gadolinium"},
	Tb: {"Tb", "Terbium"},
	Dy: {"Dy", "Dysprosium"},
	Ho: {"Ho", "Holmium"},
	Er: {"Er", "Erbium"},
	Tm: {"Tm", "Thulium"},
	Yb: {"Yb", "Ytterbium"},
	Lu: {"Lu", "Lutetium"},
	Hf: {"Hf", "Hafnium"},
	Ta: {"Ta", "Tantalum"},
	W:  {"W", "Tungsten"},
	Re: {"Re", "Rhenium"},
	Os: {"Os", "Osmium"},
	Ir: {"Ir", "Iridium"},
	Pt: {"Pt", "Platinum"},
	Au: {"Au", "Gold"},
	Hg: {"Hg", "Mercury"},
	Tl: {"Tl", "Thallium"},
	Pb: {"Pb", "Lead"},
	Bi: {"Bi", "Bismuth"},
	Po: {"Po", "Polonium"},
	At: {"At", "Astatine"},
	Rn: {"Rn", "Radon"},
	Fr: {"Fr", "Francium"},
	Ra: {"Ra", "Radium"},
	Ac: {"Ac", "Actinium"},
	Th: {"Th", "Thorium"},
	Pa: {"Pa", "Protactinium"},
	U:  {"U", "Uranium"},
	Np: {"Np", "Neptunium"},
	Pu: {"Pu", "Plutonium"},
	Am: {"Am", "Americium"},
	Cm: {"Cm", "Curium"},
	Bk: {"Bk", "Berkelium"},
	Cf: {"Cf", "Californium"},
	Es: {"Es", "Einsteinium"},
	Fm: {"Fm", "Fermium"},
	Md: {"Md", "Mendelevium"},
	No: {"No", "Nobelium"},
	Lr: {"Lr", "Lawrencium"},
	Rf: {"Rf", "Rutherfordium"},
	Db: {"Db", "Dubnium"},
	Sg: {"Sg", "Seaborgium"},
	Bh: {"Bh", "Bohrium"},
	Hs: {"Hs", "Hassium"},
	Mt: {"Mt", "Meitnerium"},
	Ds: {"Ds", "Darmstadtium"},
	Rg: {"Rg", "Roentgenium"},
	Cn: {"Cn", "Copernicium"},
	Nh: {"Nh", "Nihonium"},
	Fl: {"Fl", "Flerovium"},
	Mc: {"Mc", "Moscovium"},
	Lv: {"Lv", "Livermorium"},
	Ts: {"Ts", "Tennessine"},
	Og: {"Og", "Oganesson"},
}

// Valid reports whether e is a real element.
func (e Element) Valid() bool {
	return e >= H && e <= MaxElement
}

// Symbol returns the chemical symbol, or "" for invalid elements.
func (e Element) Symbol() string {
	if !e.Valid() {
		return ""
	}
	return elementInfos[e].symbol
}

// Name returns the English element name, or "" for invalid elements.
func (e Element) Name() string {
	if !e.Valid() {
		return ""
	}
	return elementInfos[e].name
}

func (e Element) String() string {
	if !e.Valid() {
		return "Element(" + strconv.Itoa(int(e)) + ")"
	}
	return elementInfos[e].symbol
}
