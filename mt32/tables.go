package mt32

// GroupA holds the MT-32 preset timbre names for memory group A (0-63).
var GroupA = [GroupSize]string{
	"AcouPiano1", "AcouPiano2", "AcouPiano3", "ElecPiano1",
	"ElecPiano2", "ElecPiano3", "ElecPiano4", "Honkytonk",
	"Elec Org 1", "Elec Org 2", "Elec Org 3", "Elec Org 4",
	"Pipe Org 1", "Pipe Org 2", "Pipe Org 3", "Accordion",
	"Harpsi 1", "Harpsi 2", "Harpsi 3", "Clavi 1",
	"Clavi 2", "Clavi 3", "Celesta 1", "Celesta 2",
	"Syn Brass1", "Syn Brass2", "Syn Brass3", "Syn Brass4",
	"Syn Bass 1", "Syn Bass 2", "Syn Bass 3", "Syn Bass 4",
	"Fantasy", "Harmo Pan", "Chorale", "Glasses",
	"Soundtrack", "Atmosphere", "Warm Bell", "Funny Vox",
	"Echo Bell", "Ice Rain", "Oboe 2001", "Echo Pan",
	"DoctorSolo", "Schooldaze", "BellSinger", "SquareWave",
	"Str Sect 1", "Str Sect 2", "Str Sect 3", "Pizzicato",
	"Violin 1", "Violin 2", "Cello 1", "Cello 2",
	"Contrabass", "Harp 1", "Harp 2", "Guitar 1",
	"Guitar 2", "Elec Gtr 1", "Elec Gtr 2", "Sitar",
}

// GroupB holds the preset timbre names for memory group B (0-63).
var GroupB = [GroupSize]string{
	"Acou Bass1", "Acou Bass2", "Elec Bass1", "Elec Bass2",
	"Slap Bass1", "Slap Bass2", "Fretless 1", "Fretless 2",
	"Flute 1", "Flute 2", "Piccolo 1", "Piccolo 2",
	"Recorder", "Pan Pipes", "Sax 1", "Sax 2",
	"Sax 3", "Sax 4", "Clarinet 1", "Clarinet 2",
	"Oboe", "Engl Horn", "Bassoon", "Harmonica",
	"Trumpet 1", "Trumpet 2", "Trombone 1", "Trombone 2",
	"Fr Horn 1", "Fr Horn 2", "Tuba", "Brs Sect 1",
	"Brs Sect 2", "Vibe 1", "Vibe 2", "Syn Mallet",
	"Wind Bell", "Glock", "Tube Bell", "Xylophone",
	"Marimba", "Koto", "Sho", "Shakuhachi",
	"Whistle 1", "Whistle 2", "Bottleblow", "Breathpipe",
	"Timpani", "MelodicTom", "Deep Snare", "Elec Perc1",
	"Elec Perc2", "Taiko", "Taiko Rim", "Cymbal",
	"Castanets", "Triangle", "Orche Hit", "Telephone",
	"Bird Tweet", "OneNoteJam", "WaterBells", "JungleTune",
}

// StockName returns the factory name of patch slot 0-127: group A
// followed by group B.
func StockName(slot int) string {
	switch {
	case slot < 0 || slot >= NumPatches:
		return ""
	case slot < GroupSize:
		return GroupA[slot]
	default:
		return GroupB[slot-GroupSize]
	}
}

// StockPatches returns a patch table seeded with the factory names.
func StockPatches() PatchTable {
	var t PatchTable
	for i := range t {
		t[i] = StockName(i)
	}
	return t
}
