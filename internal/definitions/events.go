package definitions

// Event codes with special meaning to the graph builder.
const (
	EventUpdateIC  int64 = 0
	EventUpdateOOC int64 = 1
	EventDataSet   int64 = 38
	EventUpdate    int64 = 60
	EventLink      int64 = 61
)

// Templates use {eN} for raw event params and {role:eN} for resolved names.
// {prev} is replaced by the template of the row that links to this one.
var eventDefs = []TypeDefinition{
	{Code: 0, Name: "UPDATE_IC", Description: "In combat timer", Template: "In Combat", Chainable: true,
		Params: concat(repeat("initial"), repeat("repeat"))},
	{Code: 1, Name: "UPDATE_OOC", Description: "Out of combat timer", Template: "Out of Combat", Chainable: true,
		Params: concat(repeat("initial"), repeat("repeat"))},
	{Code: 2, Name: "HEALTH_PCT", Description: "Health percentage within range", Template: "Between {e1}-{e2}% Health",
		Params: concat(params(param("minHpPct", RolePercent), param("maxHpPct", RolePercent)), repeat("repeat"))},
	{Code: 3, Name: "MANA_PCT", Description: "Mana percentage within range", Template: "Between {e1}-{e2}% Mana",
		Params: concat(params(param("minManaPct", RolePercent), param("maxManaPct", RolePercent)), repeat("repeat"))},
	{Code: 4, Name: "AGGRO", Description: "On entering combat", Template: "On Aggro"},
	{Code: 5, Name: "KILL", Description: "On killing a unit", Template: "On Killed Unit",
		Params: concat(repeat("cooldown"), params(param("playerOnly", RoleBool), param("creatureEntry", RoleCreature)))},
	{Code: 6, Name: "DEATH", Description: "On death", Template: "On Just Died"},
	{Code: 7, Name: "EVADE", Description: "On evading", Template: "On Evade"},
	{Code: 8, Name: "SPELLHIT", Description: "On being hit by a spell", Template: "On Spellhit '{spell:e1}'",
		Params: concat(params(param("spell", RoleSpell), param("school", RolePlain)), repeat("cooldown"))},
	{Code: 9, Name: "RANGE", Description: "Target within range", Template: "Within {e5}-{e6} Range",
		Params: concat(plain("minDist", "maxDist"), repeat("repeat"), plain("rangeMin", "rangeMax"))},
	{Code: 10, Name: "OOC_LOS", Description: "Unit in line of sight out of combat", Template: "Within {e1}-{e2} Range Out of Combat LoS",
		Params: concat(params(enum("hostilityMode", hostilityModes), param("maxRange", RolePlain)), repeat("cooldown"), params(param("playerOnly", RoleBool)))},
	{Code: 11, Name: "RESPAWN", Description: "On respawn", Template: "On Respawn",
		Params: params(enum("type", respawnTypes), param("map", RolePlain), param("area", RolePlain))},
	{Code: 12, Name: "TARGET_HEALTH_PCT", Description: "Target health percentage within range", Template: "Target Between {e1}-{e2}% Health",
		Params: concat(params(param("minHpPct", RolePercent), param("maxHpPct", RolePercent)), repeat("repeat"))},
	{Code: 13, Name: "VICTIM_CASTING", Description: "Victim is casting", Template: "On Victim Casting '{spell:e3}'",
		Params: concat(repeat("repeat"), params(param("spell", RoleSpell)))},
	{Code: 14, Name: "FRIENDLY_HEALTH", Description: "Friendly unit missing health", Template: "Friendly At {e1} Health",
		Params: concat(plain("hpDeficit", "radius"), repeat("repeat"))},
	{Code: 15, Name: "FRIENDLY_IS_CC", Description: "Friendly unit crowd controlled", Template: "On Friendly Crowd Controlled",
		Params: concat(plain("radius"), repeat("repeat"))},
	{Code: 16, Name: "FRIENDLY_MISSING_BUFF", Description: "Friendly unit missing a buff", Template: "On Friendly Unit Missing Buff '{spell:e1}'",
		Params: concat(params(param("spell", RoleSpell), param("radius", RolePlain)), repeat("repeat"), params(param("onlyInCombat", RoleBool)))},
	{Code: 17, Name: "SUMMONED_UNIT", Description: "On summoning a unit", Template: "On Summoned Unit",
		Params: concat(params(param("creatureEntry", RoleCreature)), repeat("cooldown"))},
	{Code: 18, Name: "TARGET_MANA_PCT", Description: "Target mana percentage within range", Template: "Target Between {e1}-{e2}% Mana",
		Params: concat(params(param("minManaPct", RolePercent), param("maxManaPct", RolePercent)), repeat("repeat"))},
	{Code: 19, Name: "ACCEPTED_QUEST", Description: "On quest accepted", Template: "On Quest '{quest:e1}' Taken",
		Params: concat(params(param("quest", RoleQuest)), repeat("cooldown"))},
	{Code: 20, Name: "REWARD_QUEST", Description: "On quest rewarded", Template: "On Quest '{quest:e1}' Finished",
		Params: concat(params(param("quest", RoleQuest)), repeat("cooldown"))},
	{Code: 21, Name: "REACHED_HOME", Description: "On reaching home position", Template: "On Reached Home"},
	{Code: 22, Name: "RECEIVE_EMOTE", Description: "On receiving an emote", Template: "Received Emote {e1}",
		Params: concat(plain("emote"), repeat("cooldown"))},
	{Code: 23, Name: "HAS_AURA", Description: "Self has aura", Template: "On Aura '{spell:e1}'",
		Params: concat(params(param("spell", RoleSpell), param("stacks", RolePlain)), repeat("repeat"))},
	{Code: 24, Name: "TARGET_BUFFED", Description: "Target has aura", Template: "On Target Buffed With '{spell:e1}'",
		Params: concat(params(param("spell", RoleSpell), param("stacks", RolePlain)), repeat("repeat"))},
	{Code: 25, Name: "RESET", Description: "After combat, on spawn or on respawn", Template: "On Reset"},
	{Code: 26, Name: "IC_LOS", Description: "Unit in line of sight in combat", Template: "In Combat LoS",
		Params: concat(params(enum("hostilityMode", hostilityModes), param("maxRange", RolePlain)), repeat("cooldown"), params(param("playerOnly", RoleBool)))},
	{Code: 27, Name: "PASSENGER_BOARDED", Description: "On passenger boarding", Template: "On Passenger Boarded",
		Params: repeat("cooldown")},
	{Code: 28, Name: "PASSENGER_REMOVED", Description: "On passenger leaving", Template: "On Passenger Removed",
		Params: repeat("cooldown")},
	{Code: 29, Name: "CHARMED", Description: "On being charmed", Template: "On Charmed",
		Params: params(param("onRemove", RoleBool))},
	{Code: 30, Name: "CHARMED_TARGET", Description: "On charming a target", Template: "On Target Charmed"},
	{Code: 31, Name: "SPELLHIT_TARGET", Description: "On target hit by own spell", Template: "On Target Spellhit '{spell:e1}'",
		Params: concat(params(param("spell", RoleSpell), param("school", RolePlain)), repeat("cooldown"))},
	{Code: 32, Name: "DAMAGED", Description: "On taking damage", Template: "On Damaged Between {e1}-{e2}",
		Params: concat(plain("minDmg", "maxDmg"), repeat("cooldown"))},
	{Code: 33, Name: "DAMAGED_TARGET", Description: "On target taking damage", Template: "On Target Damaged Between {e1}-{e2}",
		Params: concat(plain("minDmg", "maxDmg"), repeat("cooldown"))},
	{Code: 34, Name: "MOVEMENTINFORM", Description: "On reaching a movement point", Template: "On Reached Point {e2}",
		Params: params(enum("movementType", movementTypes), param("pointId", RolePlain))},
	{Code: 35, Name: "SUMMON_DESPAWNED", Description: "On summoned unit despawn", Template: "On Summon Despawned",
		Params: concat(params(param("creatureEntry", RoleCreature)), repeat("cooldown"))},
	{Code: 36, Name: "CORPSE_REMOVED", Description: "On corpse removal", Template: "On Corpse Removed"},
	{Code: 37, Name: "AI_INIT", Description: "On AI initialization", Template: "On Initialize"},
	{Code: 38, Name: "DATA_SET", Description: "On data field set by SET_DATA", Template: "On Data Set {e1} {e2}",
		Params: concat(params(param("field", RoleDataField), param("value", RoleDataValue)), repeat("cooldown"))},
	{Code: 39, Name: "ESCORT_START", Description: "On escort path start", Template: "On Path {wp:e2} Started",
		Params: plain("pointId", "pathId")},
	{Code: 40, Name: "ESCORT_REACHED", Description: "On escort waypoint reached", Template: "On Point {wp:e1} of Path {wp:e2} Reached",
		Params: plain("pointId", "pathId")},
	{Code: 46, Name: "AREATRIGGER_ONTRIGGER", Description: "On areatrigger entered", Template: "On Trigger",
		Params: plain("triggerId")},
	{Code: 52, Name: "TEXT_OVER", Description: "On text group finished", Template: "On Text {e1} Over",
		Params: params(param("textGroupId", RolePlain), param("creatureEntry", RoleCreature))},
	{Code: 53, Name: "RECEIVE_HEAL", Description: "On receiving healing", Template: "On Received Heal Between {e1}-{e2}",
		Params: concat(plain("minHeal", "maxHeal"), repeat("cooldown"))},
	{Code: 54, Name: "JUST_SUMMONED", Description: "On being summoned", Template: "On Just Summoned"},
	{Code: 55, Name: "ESCORT_PAUSED", Description: "On escort paused", Template: "On Path {e2} Paused",
		Params: plain("pointId", "pathId")},
	{Code: 56, Name: "ESCORT_RESUMED", Description: "On escort resumed", Template: "On Path {e2} Resumed",
		Params: plain("pointId", "pathId")},
	{Code: 57, Name: "ESCORT_STOPPED", Description: "On escort stopped", Template: "On Path {e2} Stopped",
		Params: plain("pointId", "pathId")},
	{Code: 58, Name: "ESCORT_ENDED", Description: "On escort finished", Template: "On Path {e2} Finished",
		Params: plain("pointId", "pathId")},
	{Code: 59, Name: "TIMED_EVENT_TRIGGERED", Description: "On timed event fired", Template: "On Timed Event {e1} Triggered",
		Params: plain("timedEventId")},
	{Code: 60, Name: "UPDATE", Description: "Timer regardless of combat state", Template: "On Update", Chainable: true,
		Params: concat(repeat("initial"), repeat("repeat"))},
	{Code: 61, Name: "LINK", Description: "Fired by the row whose link names this row", Template: "{prev}"},
	{Code: 62, Name: "GOSSIP_SELECT", Description: "On gossip option selected", Template: "On Gossip Option {e2} Selected",
		Params: plain("menuId", "actionId")},
	{Code: 63, Name: "JUST_CREATED", Description: "On creation", Template: "On Just Created"},
	{Code: 64, Name: "GOSSIP_HELLO", Description: "On gossip hello", Template: "On Gossip Hello",
		Params: params(enum("filter", gossipFilters))},
	{Code: 65, Name: "FOLLOW_COMPLETED", Description: "On follow completed", Template: "On Follow Complete"},
	{Code: 66, Name: "EVENT_PHASE_CHANGE", Description: "On event phase change", Template: "On Event Phase {e1} Set",
		Params: params(param("phaseMask", RolePhaseMask))},
	{Code: 67, Name: "IS_BEHIND_TARGET", Description: "Behind current target", Template: "On Behind Target",
		Params: repeat("cooldown")},
	{Code: 68, Name: "GAME_EVENT_START", Description: "On game event start", Template: "On Game Event {e1} Started",
		Params: plain("gameEventId")},
	{Code: 69, Name: "GAME_EVENT_END", Description: "On game event end", Template: "On Game Event {e1} Ended",
		Params: plain("gameEventId")},
	{Code: 70, Name: "GO_STATE_CHANGED", Description: "On gameobject state change", Template: "On Gameobject State Changed",
		Params: params(enum("state", goStates))},
	{Code: 71, Name: "GO_EVENT_INFORM", Description: "On gameobject event", Template: "On Event {e1} Inform",
		Params: plain("eventId")},
	{Code: 72, Name: "ACTION_DONE", Description: "On scripted action done", Template: "On Action {e1} Done",
		Params: plain("eventId")},
	{Code: 73, Name: "ON_SPELLCLICK", Description: "On spellclick", Template: "On Spellclick"},
	{Code: 74, Name: "FRIENDLY_HEALTH_PCT", Description: "Friendly unit below health percentage", Template: "On Friendly Below {e5}% Health",
		Params: concat(repeat("initial"), repeat("repeat"), params(param("hpPct", RolePercent), param("range", RolePlain)))},
	{Code: 75, Name: "DISTANCE_CREATURE", Description: "Creature within distance", Template: "On Distance {e3}y To Creature",
		Params: params(param("guid", RoleCreatureGUID), param("creatureEntry", RoleCreature), param("distance", RolePlain), param("repeat", RoleMillis))},
	{Code: 76, Name: "DISTANCE_GAMEOBJECT", Description: "Gameobject within distance", Template: "On Distance {e3}y To GameObject",
		Params: params(param("guid", RoleGameObjectGUID), param("goEntry", RoleGameObject), param("distance", RolePlain), param("repeat", RoleMillis))},
	{Code: 77, Name: "COUNTER_SET", Description: "On counter reaching a value", Template: "On Counter {e1} Set To {e2}",
		Params: concat(plain("counterId", "value"), repeat("cooldown"))},
	{Code: 82, Name: "SUMMONED_UNIT_DIES", Description: "On summoned unit death", Template: "On Summoned Unit Dies",
		Params: concat(params(param("creatureEntry", RoleCreature)), repeat("cooldown"))},
	{Code: 101, Name: "NEAR_PLAYERS", Description: "At least N players in range", Template: "On {e1} or More Players in Range",
		Params: concat(plain("minPlayers", "radius"), params(param("firstTimer", RoleMillis)), repeat("repeat"))},
	{Code: 102, Name: "NEAR_PLAYERS_NEGATION", Description: "Fewer than N players in range", Template: "On Less Than {e1} Players in Range",
		Params: concat(plain("maxPlayers", "radius"), params(param("firstTimer", RoleMillis)), repeat("repeat"))},
	{Code: 103, Name: "NEAR_UNIT", Description: "At least N units in range", Template: "On {e3} or More Units in Range",
		Params: concat(params(enum("type", storageTypes), param("entry", RolePlain)), plain("count", "range"), params(param("timer", RoleMillis)))},
	{Code: 104, Name: "NEAR_UNIT_NEGATION", Description: "Fewer than N units in range", Template: "On Less Than {e3} Units in Range",
		Params: concat(params(enum("type", storageTypes), param("entry", RolePlain)), plain("count", "range"), params(param("timer", RoleMillis)))},
	{Code: 105, Name: "AREA_CASTING", Description: "Hostile casting in range", Template: "On Hostile Casting in Range",
		Params: concat(repeat("initial"), repeat("repeat"), plain("rangeMin", "rangeMax"))},
	{Code: 106, Name: "AREA_RANGE", Description: "Hostile in range", Template: "On Hostile in Range",
		Params: concat(repeat("initial"), repeat("repeat"), plain("rangeMin", "rangeMax"))},
	{Code: 107, Name: "SUMMONED_UNIT_EVADE", Description: "On summoned unit evade", Template: "On Summoned Unit Evade",
		Params: concat(params(param("creatureEntry", RoleCreature)), repeat("cooldown"))},
	{Code: 108, Name: "WAYPOINT_REACHED", Description: "On waypoint reached", Template: "On Point {wp:e1} of Path {wp:e2} Reached",
		Params: plain("pointId", "pathId")},
	{Code: 109, Name: "WAYPOINT_ENDED", Description: "On waypoint path ended", Template: "On Path {e2} Finished",
		Params: plain("pointId", "pathId")},
	{Code: 110, Name: "IS_IN_MELEE_RANGE", Description: "Target in melee range", Template: "On Melee Range Target",
		Params: concat(repeat("initial"), repeat("repeat"), params(param("distance", RolePlain), param("invert", RoleBool)))},
}
