package definitions

import "github.com/AaronLay10/SaiScope/internal/smartai"

// Target codes with special meaning to the graph builder.
const (
	TargetSelf               int64 = 1
	TargetCreatureRange      int64 = 9
	TargetCreatureGUID       int64 = 10
	TargetCreatureDistance   int64 = 11
	TargetGameObjectRange    int64 = 13
	TargetGameObjectGUID     int64 = 14
	TargetGameObjectDistance int64 = 15
	TargetClosestCreature    int64 = 19
	TargetClosestGameObject  int64 = 20
)

var hostileParams = params(param("maxDist", RolePlain), param("playerOnly", RoleBool), param("powerTypePlusOne", RolePlain), param("missingAura", RoleSpell))

// Target templates use {tN} and {role:tN} like the other tables.
var targetDefs = []TypeDefinition{
	{Code: 0, Name: "NONE", Description: "No target", Template: "None"},
	{Code: 1, Name: "SELF", Description: "Self", Template: "Self"},
	{Code: 2, Name: "VICTIM", Description: "Current victim", Template: "Victim"},
	{Code: 3, Name: "HOSTILE_SECOND_AGGRO", Description: "Second highest threat", Template: "Second On Threatlist", Params: hostileParams},
	{Code: 4, Name: "HOSTILE_LAST_AGGRO", Description: "Lowest threat", Template: "Last On Threatlist", Params: hostileParams},
	{Code: 5, Name: "HOSTILE_RANDOM", Description: "Random unit on threat list", Template: "Random On Threatlist", Params: hostileParams},
	{Code: 6, Name: "HOSTILE_RANDOM_NOT_TOP", Description: "Random unit on threat list except the top", Template: "Random On Threatlist Not Top", Params: hostileParams},
	{Code: 7, Name: "ACTION_INVOKER", Description: "Unit that caused the event", Template: "Invoker"},
	{Code: 8, Name: "POSITION", Description: "Position from target coordinates", Template: "Position"},
	{Code: 9, Name: "CREATURE_RANGE", Description: "Creatures within a distance band", Template: "Closest Creature '{creature:t1}'",
		Params: params(param("creatureEntry", RoleCreature), param("minDist", RolePlain), param("maxDist", RolePlain), enum("alive", aliveStates))},
	{Code: 10, Name: "CREATURE_GUID", Description: "Creature by spawn guid", Template: "Closest Creature '{creature_guid:t1}'",
		Params: params(param("guid", RoleCreatureGUID), param("creatureEntry", RoleCreature))},
	{Code: 11, Name: "CREATURE_DISTANCE", Description: "Creatures within a distance", Template: "Closest Creature '{creature:t1}'",
		Params: params(param("creatureEntry", RoleCreature), param("maxDist", RolePlain), enum("alive", aliveStates))},
	{Code: 12, Name: "STORED", Description: "Previously stored targets", Template: "Stored",
		Params: plain("varId")},
	{Code: 13, Name: "GAMEOBJECT_RANGE", Description: "Gameobjects within a distance band", Template: "Closest Gameobject '{gameobject:t1}'",
		Params: params(param("goEntry", RoleGameObject), param("minDist", RolePlain), param("maxDist", RolePlain))},
	{Code: 14, Name: "GAMEOBJECT_GUID", Description: "Gameobject by spawn guid", Template: "Closest Gameobject '{gameobject_guid:t1}'",
		Params: params(param("guid", RoleGameObjectGUID), param("goEntry", RoleGameObject))},
	{Code: 15, Name: "GAMEOBJECT_DISTANCE", Description: "Gameobjects within a distance", Template: "Closest Gameobject '{gameobject:t1}'",
		Params: params(param("goEntry", RoleGameObject), param("maxDist", RolePlain))},
	{Code: 16, Name: "INVOKER_PARTY", Description: "Party of the invoker", Template: "Invoker's Party",
		Params: params(param("includePets", RoleBool))},
	{Code: 17, Name: "PLAYER_RANGE", Description: "Players within a distance band", Template: "Players in Range",
		Params: plain("minDist", "maxDist", "maxCount")},
	{Code: 18, Name: "PLAYER_DISTANCE", Description: "Players within a distance", Template: "Players in Distance",
		Params: plain("maxDist")},
	{Code: 19, Name: "CLOSEST_CREATURE", Description: "Closest creature", Template: "Closest Creature '{creature:t1}'",
		Params: params(param("creatureEntry", RoleCreature), param("maxDist", RolePlain), param("dead", RoleBool))},
	{Code: 20, Name: "CLOSEST_GAMEOBJECT", Description: "Closest gameobject", Template: "Closest Gameobject '{gameobject:t1}'",
		Params: params(param("goEntry", RoleGameObject), param("maxDist", RolePlain))},
	{Code: 21, Name: "CLOSEST_PLAYER", Description: "Closest player", Template: "Closest Player",
		Params: plain("maxDist")},
	{Code: 22, Name: "ACTION_INVOKER_VEHICLE", Description: "Vehicle of the invoker", Template: "Invoker's Vehicle"},
	{Code: 23, Name: "OWNER_OR_SUMMONER", Description: "Owner or summoner", Template: "Owner Or Summoner"},
	{Code: 24, Name: "THREAT_LIST", Description: "Every unit on threat list", Template: "Threatlist",
		Params: params(param("maxDist", RolePlain), param("playerOnly", RoleBool))},
	{Code: 25, Name: "CLOSEST_ENEMY", Description: "Closest enemy", Template: "Closest Enemy",
		Params: params(param("maxDist", RolePlain), param("playerOnly", RoleBool))},
	{Code: 26, Name: "CLOSEST_FRIENDLY", Description: "Closest friendly unit", Template: "Closest Friendly Unit",
		Params: params(param("maxDist", RolePlain), param("playerOnly", RoleBool))},
	{Code: 27, Name: "LOOT_RECIPIENTS", Description: "Players who tagged the creature", Template: "Loot Recipients"},
	{Code: 28, Name: "FARTHEST", Description: "Farthest target", Template: "Farthest Target",
		Params: params(param("maxDist", RolePlain), param("playerOnly", RoleBool), param("isInLos", RoleBool), param("minDist", RolePlain))},
	{Code: 29, Name: "VEHICLE_PASSENGER", Description: "Passenger in a vehicle seat", Template: "Vehicle Seat",
		Params: plain("seat")},
	{Code: 201, Name: "PLAYER_WITH_AURA", Description: "Players with or without an aura", Template: "Player With Aura",
		Params: params(param("spell", RoleSpell), param("negation", RoleBool), param("maxDist", RolePlain), param("minDist", RolePlain))},
	{Code: 202, Name: "RANDOM_POINT", Description: "Random points around a center", Template: "Random Point",
		Params: params(param("range", RolePlain), param("amount", RolePlain), param("selfAsMiddle", RoleBool))},
	{Code: 203, Name: "ROLE_SELECTION", Description: "Players by role", Template: "Class Roles",
		Params: params(param("rangeMax", RolePlain), flags("targetMask", roleMask), param("resize", RolePlain))},
	{Code: 204, Name: "SUMMONED_CREATURES", Description: "Creatures summoned by self", Template: "Summoned Creatures",
		Params: params(param("creatureEntry", RoleCreature))},
	{Code: 205, Name: "INSTANCE_STORAGE", Description: "Unit stored in instance data", Template: "Instance Storage",
		Params: params(param("dataIndex", RolePlain), enum("type", storageTypes))},
}

// TargetGroups returns the script groups addressed by a target that names
// specific creatures or gameobjects. GUID targets yield the guid-specific
// group (stored under the negated guid) and, when the entry is given, the
// entry group as well. Other targets yield nothing.
func TargetGroups(code int64, p [4]int64) []smartai.GroupKey {
	var out []smartai.GroupKey
	add := func(st smartai.SourceType, entry int64) {
		if entry != 0 {
			out = append(out, smartai.GroupKey{SourceType: st, EntryOrGuid: entry})
		}
	}
	switch code {
	case TargetCreatureRange, TargetCreatureDistance, TargetClosestCreature:
		add(smartai.SourceCreature, p[0])
	case TargetCreatureGUID:
		add(smartai.SourceCreature, -p[0])
		add(smartai.SourceCreature, p[1])
	case TargetGameObjectRange, TargetGameObjectDistance, TargetClosestGameObject:
		add(smartai.SourceGameObject, p[0])
	case TargetGameObjectGUID:
		add(smartai.SourceGameObject, -p[0])
		add(smartai.SourceGameObject, p[1])
	}
	return out
}
