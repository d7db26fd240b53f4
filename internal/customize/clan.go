package customize

import "fmt"

// Clan is an ancestry group. ClanUnknown is a sentinel, never a valid
// population group.
type Clan uint8

const (
	ClanUnknown    Clan = 0
	ClanMidlander  Clan = 1
	ClanHighlander Clan = 2
	ClanWildwood   Clan = 3
	ClanDuskwight  Clan = 4
	ClanPlainsfolk Clan = 5
	ClanDunesfolk  Clan = 6
	ClanSeeker     Clan = 7
	ClanKeeper     Clan = 8
	ClanSeaWolf    Clan = 9
	ClanHellsguard Clan = 10
	ClanRaen       Clan = 11
	ClanXaela      Clan = 12
	ClanHelion     Clan = 13
	ClanLost       Clan = 14
	ClanRava       Clan = 15
	ClanVeena      Clan = 16

	ClanFirst = ClanMidlander
	ClanLast  = ClanVeena
)

// ClanCount is the number of real clans (Unknown excluded).
const ClanCount = int(ClanLast)

var clanNames = [...]string{
	"Unknown", "Midlander", "Highlander", "Wildwood", "Duskwight",
	"Plainsfolk", "Dunesfolk", "Seeker", "Keeper", "Sea Wolf",
	"Hellsguard", "Raen", "Xaela", "Helion", "The Lost", "Rava", "Veena",
}

func (c Clan) String() string {
	if int(c) < len(clanNames) {
		return clanNames[c]
	}
	return fmt.Sprintf("Clan(%d)", uint8(c))
}

// Sex of a population group. Exactly two values.
type Sex uint8

const (
	SexMale   Sex = 0
	SexFemale Sex = 1
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	}
	return fmt.Sprintf("Sex(%d)", uint8(s))
}

// NumSets is the number of (clan, sex) population groups.
const NumSets = ClanCount * 2

// setIndex maps a (clan, sex) pair onto the flat set array.
// Out-of-range pairs are reported, never clamped or wrapped; they are only
// reachable by passing the Unknown sentinel or an undefined sex.
func setIndex(clan Clan, sex Sex) (int, error) {
	if clan < ClanFirst || clan > ClanLast {
		return 0, fmt.Errorf("no customization set for clan %s", clan)
	}
	if sex != SexMale && sex != SexFemale {
		return 0, fmt.Errorf("no customization set for sex %s", sex)
	}
	idx := (int(clan) - 1) * 2
	if sex == SexFemale {
		idx++
	}
	return idx, nil
}
