package definitions

// Enum and flag labels shared by several tables.
var (
	reactStates = map[int64]string{0: "Passive", 1: "Defensive", 2: "Aggressive"}

	sheathStates = map[int64]string{0: "Unarmed", 1: "Melee", 2: "Ranged"}

	powerTypes = map[int64]string{
		0: "Mana", 1: "Rage", 2: "Focus", 3: "Energy", 4: "Happiness", 5: "Rune", 6: "Runic Power",
	}

	movementTypes = map[int64]string{
		0: "Walk", 1: "Run", 2: "Run Back", 3: "Swim", 4: "Swim Back",
		5: "Turn Rate", 6: "Flight", 7: "Flight Back", 8: "Pitch Rate",
	}

	goStates = map[int64]string{0: "Not Ready", 1: "Ready", 2: "Activated", 3: "Deactivated"}

	aiTemplates = map[int64]string{
		0: "Basic", 1: "Caster", 2: "Turret", 3: "Passive", 4: "Caged Gameobject Part", 5: "Caged Creature Part",
	}

	followTypes = map[int64]string{
		1: "Circle", 2: "Semi-Circle Behind", 3: "Semi-Circle Front", 4: "Line", 5: "Column", 6: "Angular",
	}

	aliveStates = map[int64]string{0: "Both", 1: "Alive", 2: "Dead"}

	hostilityModes = map[int64]string{0: "Hostile", 1: "Not Hostile", 2: "Any"}

	respawnTypes = map[int64]string{0: "None", 1: "Map", 2: "Area"}

	gossipFilters = map[int64]string{0: "Any", 1: "Gossip Hello", 2: "Report Use"}

	timerTypes = map[int64]string{0: "Out of Combat", 1: "In Combat", 2: "Always"}

	waypointKinds = map[int64]string{0: "Waypoint", 1: "Patrol"}

	summonTypes = map[int64]string{
		1: "Timed Or Dead Despawn", 2: "Timed Or Corpse Despawn", 3: "Timed Despawn",
		4: "Timed Despawn Out of Combat", 5: "Corpse Despawn", 6: "Corpse Timed Despawn",
		7: "Dead Despawn", 8: "Manual Despawn",
	}

	storageTypes = map[int64]string{1: "Creature", 2: "Gameobject"}

	roleMask = map[int64]string{1: "Tank", 2: "Healer", 4: "Damage"}

	castFlags = map[int64]string{
		0x01: "Interrupt Previous", 0x02: "Triggered", 0x20: "Aura Not Present", 0x40: "Combat Move",
	}

	unitFlags = map[int64]string{
		0x00000001: "Server Controlled",
		0x00000002: "Not Attackable",
		0x00000004: "Disable Movement",
		0x00000008: "PvP Attackable",
		0x00000010: "Rename",
		0x00000020: "Preparation",
		0x00000080: "Not Attackable 1",
		0x00000100: "Immune To Players",
		0x00000200: "Immune To NPC's",
		0x00000400: "Looting",
		0x00000800: "Pet In Combat",
		0x00001000: "PvP",
		0x00002000: "Silenced",
		0x00020000: "Pacified",
		0x00040000: "Stunned",
		0x00080000: "In Combat",
		0x00200000: "Disarmed",
		0x00400000: "Confused",
		0x00800000: "Fleeing",
		0x01000000: "Player Controlled",
		0x02000000: "Not Selectable",
		0x04000000: "Skinnable",
		0x08000000: "Mounted",
		0x40000000: "Sheathed",
	}

	npcFlags = map[int64]string{
		0x00000001: "Gossip",
		0x00000002: "Questgiver",
		0x00000010: "Trainer",
		0x00000020: "Class Trainer",
		0x00000040: "Profession Trainer",
		0x00000080: "Vendor",
		0x00000100: "Ammo Vendor",
		0x00000200: "Food Vendor",
		0x00000400: "Poison Vendor",
		0x00000800: "Reagent Vendor",
		0x00001000: "Repair Vendor",
		0x00002000: "Flightmaster",
		0x00004000: "Spirithealer",
		0x00008000: "Spiritguide",
		0x00010000: "Innkeeper",
		0x00020000: "Banker",
		0x00040000: "Petitioner",
		0x00080000: "Tabard Designer",
		0x00100000: "Battlemaster",
		0x00200000: "Auctioneer",
		0x00400000: "Stablemaster",
		0x00800000: "Guild Banker",
		0x01000000: "Spellclick",
		0x02000000: "Player Vehicle",
	}

	goFlags = map[int64]string{
		0x0001: "In Use",
		0x0002: "Locked",
		0x0004: "Interact Cond",
		0x0008: "Transport",
		0x0010: "Not Selectable",
		0x0020: "No Despawn",
		0x0040: "Triggered",
		0x0080: "Freeze Animation",
		0x0200: "Damaged",
		0x0400: "Destroyed",
	}

	dynamicFlags = map[int64]string{
		0x0001: "Lootable",
		0x0002: "Track Unit",
		0x0004: "Tapped",
		0x0008: "Tapped By Player",
		0x0010: "Special Info",
		0x0020: "Dead",
		0x0040: "Refer A Friend",
		0x0080: "Tapped By All Threat List",
	}

	bytes1Flags = map[int64]string{
		0: "Stand", 1: "Sit", 3: "Sleep", 7: "Dead", 8: "Kneel",
	}
)

// EventFlagLabels names the bits of event_flags.
var EventFlagLabels = map[int64]string{
	0x01: "Not Repeatable",
	0x02: "Normal Dungeon",
	0x04: "Heroic Dungeon",
	0x08: "Normal Raid",
	0x10: "Heroic Raid",
	0x80: "Debug Only",
}
