package definitions

// Action codes with special meaning to the graph builder.
const (
	ActionSetData                        int64 = 45
	ActionCallTimedActionList            int64 = 80
	ActionCallRandomTimedActionList      int64 = 87
	ActionCallRandomRangeTimedActionList int64 = 88
)

// Action templates use {aN} for raw params and {role:aN} for resolved names.
// {label:aN} renders the param's enum label and {flags:aN} its flag names.
// {target} renders the row's target. The remaining placeholders are computed
// from several params at once by the narrator.
var actionDefs = []TypeDefinition{
	{Code: 0, Name: "NONE", Description: "No action", Template: "No Action Type"},
	{Code: 1, Name: "TALK", Description: "Say a creature_text group", Template: "Say Line {a1}",
		Params: params(param("textGroupId", RolePlain), param("duration", RoleMillis), param("useTalkTarget", RoleBool))},
	{Code: 2, Name: "SET_FACTION", Description: "Change faction", Template: "Set Faction {a1}",
		Params: plain("factionId")},
	{Code: 3, Name: "MORPH_TO_ENTRY_OR_MODEL", Description: "Morph to creature model or model id", Template: "{morph}",
		Params: params(param("creatureEntry", RoleCreature), param("modelId", RolePlain))},
	{Code: 4, Name: "SOUND", Description: "Play a sound", Template: "Play Sound {a1}",
		Params: params(param("soundId", RolePlain), param("onlySelf", RoleBool))},
	{Code: 5, Name: "PLAY_EMOTE", Description: "Play an emote", Template: "Play Emote {a1}",
		Params: plain("emoteId")},
	{Code: 6, Name: "FAIL_QUEST", Description: "Fail a quest for the target", Template: "Fail Quest '{quest:a1}'",
		Params: params(param("quest", RoleQuest))},
	{Code: 7, Name: "OFFER_QUEST", Description: "Offer or add a quest", Template: "Add Quest '{quest:a1}'",
		Params: params(param("quest", RoleQuest), param("directAdd", RoleBool))},
	{Code: 8, Name: "SET_REACT_STATE", Description: "Change react state", Template: "Set Reactstate {label:a1}",
		Params: params(enum("state", reactStates))},
	{Code: 9, Name: "ACTIVATE_GOBJECT", Description: "Activate a gameobject", Template: "Activate Gameobject"},
	{Code: 10, Name: "RANDOM_EMOTE", Description: "Play a random emote", Template: "Play Random Emote ({random})",
		Params: plain("emote1", "emote2", "emote3", "emote4", "emote5", "emote6")},
	{Code: 11, Name: "CAST", Description: "Cast a spell at the target", Template: "Cast '{spell:a1}'",
		Params: params(param("spell", RoleSpell), flags("castFlags", castFlags), param("triggerFlags", RolePlain), param("limitTargets", RolePlain))},
	{Code: 12, Name: "SUMMON_CREATURE", Description: "Summon a creature", Template: "Summon Creature '{creature:a1}'",
		Params: params(param("creatureEntry", RoleCreature), enum("summonType", summonTypes), param("duration", RoleMillis), param("attackInvoker", RoleBool), param("attackScriptOwner", RoleBool))},
	{Code: 13, Name: "THREAT_SINGLE_PCT", Description: "Modify threat of one target", Template: "Set Single Threat {a1}-{a2}",
		Params: params(param("increasePct", RolePercent), param("decreasePct", RolePercent))},
	{Code: 14, Name: "THREAT_ALL_PCT", Description: "Modify threat of all targets", Template: "Set All Threat {a1}-{a2}",
		Params: params(param("increasePct", RolePercent), param("decreasePct", RolePercent))},
	{Code: 15, Name: "CALL_AREAEXPLOREDOREVENTHAPPENS", Description: "Complete an explore or event quest", Template: "Quest Credit '{quest:a1}'",
		Params: params(param("quest", RoleQuest))},
	{Code: 17, Name: "SET_EMOTE_STATE", Description: "Set a looping emote", Template: "Set Emote State {a1}",
		Params: plain("emoteId")},
	{Code: 18, Name: "SET_UNIT_FLAG", Description: "Set unit flags", Template: "Set Flag{flags:a1}",
		Params: params(flags("flags", unitFlags), param("type", RolePlain))},
	{Code: 19, Name: "REMOVE_UNIT_FLAG", Description: "Remove unit flags", Template: "Remove Flag{flags:a1}",
		Params: params(flags("flags", unitFlags), param("type", RolePlain))},
	{Code: 20, Name: "AUTO_ATTACK", Description: "Allow or stop auto attack", Template: "{startstop:a1} Attacking",
		Params: params(param("allow", RoleBool))},
	{Code: 21, Name: "ALLOW_COMBAT_MOVEMENT", Description: "Allow or stop combat movement", Template: "{enable:a1} Combat Movement",
		Params: params(param("allow", RoleBool))},
	{Code: 22, Name: "SET_EVENT_PHASE", Description: "Set the event phase", Template: "Set Event Phase {a1}",
		Params: plain("phase")},
	{Code: 23, Name: "INC_EVENT_PHASE", Description: "Increment or decrement the event phase", Template: "{incdec} Phase",
		Params: plain("increment", "decrement")},
	{Code: 24, Name: "EVADE", Description: "Evade", Template: "Evade",
		Params: params(param("toRespawnPosition", RoleBool))},
	{Code: 25, Name: "FLEE_FOR_ASSIST", Description: "Flee for assistance", Template: "Flee For Assist",
		Params: params(param("withEmote", RoleBool))},
	{Code: 26, Name: "CALL_GROUPEVENTHAPPENS", Description: "Complete a group event quest", Template: "Quest Credit '{quest:a1}'",
		Params: params(param("quest", RoleQuest))},
	{Code: 27, Name: "COMBAT_STOP", Description: "Stop combat", Template: "Stop Combat"},
	{Code: 28, Name: "REMOVEAURASFROMSPELL", Description: "Remove auras of a spell", Template: "Remove Aura '{spell:a1}'",
		Params: params(param("spell", RoleSpell), param("charges", RolePlain))},
	{Code: 29, Name: "FOLLOW", Description: "Follow the target", Template: "{followstart} Follow {target}",
		Params: params(param("distance", RolePlain), param("angle", RolePlain), param("endCreatureEntry", RoleCreature), param("credit", RolePlain), param("creditType", RolePlain))},
	{Code: 30, Name: "RANDOM_PHASE", Description: "Set a random event phase", Template: "Set Random Phase ({random})",
		Params: plain("phase1", "phase2", "phase3", "phase4", "phase5", "phase6")},
	{Code: 31, Name: "RANDOM_PHASE_RANGE", Description: "Set a random event phase in range", Template: "Set Phase Random Between {a1}-{a2}",
		Params: plain("phaseMin", "phaseMax")},
	{Code: 32, Name: "RESET_GOBJECT", Description: "Reset a gameobject", Template: "Reset Gameobject"},
	{Code: 33, Name: "CALL_KILLEDMONSTER", Description: "Give kill credit", Template: "Quest Credit '{creature:a1}'",
		Params: params(param("creatureEntry", RoleCreature))},
	{Code: 34, Name: "SET_INST_DATA", Description: "Set instance data", Template: "Set Instance Data {a1} to {a2}",
		Params: plain("field", "data", "type")},
	{Code: 35, Name: "SET_INST_DATA64", Description: "Store the target guid as instance data", Template: "Set Instance Data {a1}",
		Params: plain("field")},
	{Code: 36, Name: "UPDATE_TEMPLATE", Description: "Change creature template", Template: "Update Template To '{creature:a1}'",
		Params: params(param("creatureEntry", RoleCreature), param("updateLevel", RoleBool))},
	{Code: 37, Name: "DIE", Description: "Kill self", Template: "Kill Self"},
	{Code: 38, Name: "SET_IN_COMBAT_WITH_ZONE", Description: "Engage the whole zone", Template: "Set In Combat With Zone",
		Params: plain("range")},
	{Code: 39, Name: "CALL_FOR_HELP", Description: "Call nearby allies", Template: "Call For Help",
		Params: params(param("radius", RolePlain), param("withEmote", RoleBool))},
	{Code: 40, Name: "SET_SHEATH", Description: "Change weapon sheath", Template: "Set Sheath {label:a1}",
		Params: params(enum("sheath", sheathStates))},
	{Code: 41, Name: "FORCE_DESPAWN", Description: "Despawn the target", Template: "Despawn {despawn}",
		Params: params(param("delay", RoleMillis), param("respawnTimer", RolePlain))},
	{Code: 42, Name: "SET_INVINCIBILITY_HP_LEVEL", Description: "Set minimum health", Template: "{invincibility}",
		Params: params(param("flatHp", RolePlain), param("hpPct", RolePercent))},
	{Code: 43, Name: "MOUNT_TO_ENTRY_OR_MODEL", Description: "Mount a creature model or model id", Template: "{mount}",
		Params: params(param("creatureEntry", RoleCreature), param("modelId", RolePlain))},
	{Code: 44, Name: "SET_INGAME_PHASE_MASK", Description: "Set the visibility phase mask", Template: "Set PhaseMask {a1}",
		Params: plain("phaseMask")},
	{Code: 45, Name: "SET_DATA", Description: "Set a data field on the target, firing DATA_SET", Template: "Set Data {a1} {a2}",
		Params: params(param("field", RoleDataField), param("value", RoleDataValue))},
	{Code: 46, Name: "MOVE_FORWARD", Description: "Move forward", Template: "Move Forward {a1} Yards",
		Params: plain("distance")},
	{Code: 47, Name: "SET_VISIBILITY", Description: "Toggle visibility", Template: "Set Visibility {onoff:a1}",
		Params: params(param("visible", RoleBool))},
	{Code: 48, Name: "SET_ACTIVE", Description: "Toggle grid activity", Template: "Set Active {onoff:a1}",
		Params: params(param("active", RoleBool))},
	{Code: 49, Name: "ATTACK_START", Description: "Attack the target", Template: "Start Attacking"},
	{Code: 50, Name: "SUMMON_GO", Description: "Summon a gameobject", Template: "Summon Gameobject '{gameobject:a1}'",
		Params: params(param("goEntry", RoleGameObject), param("despawnTime", RolePlain), param("targetSummon", RoleBool), param("summonType", RolePlain))},
	{Code: 51, Name: "KILL_UNIT", Description: "Kill the target", Template: "Kill Target"},
	{Code: 52, Name: "ACTIVATE_TAXI", Description: "Send the target on a taxi path", Template: "Activate Taxi Path {a1}",
		Params: plain("taxiId")},
	{Code: 53, Name: "WP_START", Description: "Start a waypoint path", Template: "Start {label:a3} Path {a2}",
		Params: params(param("run", RoleBool), param("pathId", RolePlain), enum("repeat", waypointKinds), param("quest", RoleQuest), param("despawnTime", RoleMillis), enum("reactState", reactStates))},
	{Code: 54, Name: "WP_PAUSE", Description: "Pause the waypoint path", Template: "Pause Waypoint",
		Params: params(param("time", RoleMillis))},
	{Code: 55, Name: "WP_STOP", Description: "Stop the waypoint path", Template: "Stop Waypoint",
		Params: params(param("despawnTime", RoleMillis), param("quest", RoleQuest), param("fail", RoleBool))},
	{Code: 56, Name: "ADD_ITEM", Description: "Give items to the target", Template: "Add Item '{item:a1}' {count:a2}",
		Params: params(param("item", RoleItem), param("count", RolePlain))},
	{Code: 57, Name: "REMOVE_ITEM", Description: "Take items from the target", Template: "Remove Item '{item:a1}' {count:a2}",
		Params: params(param("item", RoleItem), param("count", RolePlain))},
	{Code: 58, Name: "INSTALL_AI_TEMPLATE", Description: "Install a predefined AI", Template: "Install {label:a1} Template",
		Params: params(enum("template", aiTemplates))},
	{Code: 59, Name: "SET_RUN", Description: "Toggle running", Template: "Set Run {onoff:a1}",
		Params: params(param("run", RoleBool))},
	{Code: 60, Name: "SET_FLY", Description: "Toggle flying", Template: "Set Fly {onoff:a1}",
		Params: params(param("fly", RoleBool))},
	{Code: 61, Name: "SET_SWIM", Description: "Toggle swimming", Template: "Set Swim {onoff:a1}",
		Params: params(param("swim", RoleBool))},
	{Code: 62, Name: "TELEPORT", Description: "Teleport the target", Template: "Teleport",
		Params: plain("mapId")},
	{Code: 63, Name: "SET_COUNTER", Description: "Add to a counter", Template: "Add {a2} to Counter Id {a1}",
		Params: params(param("counterId", RolePlain), param("value", RolePlain), param("reset", RoleBool))},
	{Code: 64, Name: "STORE_TARGET_LIST", Description: "Store targets in a variable", Template: "Store Targetlist",
		Params: plain("varId")},
	{Code: 65, Name: "WP_RESUME", Description: "Resume the waypoint path", Template: "Resume Waypoint"},
	{Code: 66, Name: "SET_ORIENTATION", Description: "Face a direction", Template: "Set Orientation {orientation}"},
	{Code: 67, Name: "CREATE_TIMED_EVENT", Description: "Create a timed event", Template: "Create Timed Event",
		Params: concat(plain("timedEventId"), repeat("initial"), repeat("repeat"), params(param("chance", RolePercent)))},
	{Code: 68, Name: "PLAYMOVIE", Description: "Play a movie", Template: "Play Movie {a1}",
		Params: plain("movieId")},
	{Code: 69, Name: "MOVE_TO_POS", Description: "Move to the target position", Template: "Move To {target}",
		Params: params(param("pointId", RolePlain), param("transport", RoleBool), param("controlled", RoleBool), param("contactDistance", RolePlain))},
	{Code: 70, Name: "RESPAWN_TARGET", Description: "Respawn the target", Template: "Respawn {target}",
		Params: plain("goRespawnTime")},
	{Code: 71, Name: "EQUIP", Description: "Change equipment", Template: "Change Equipment",
		Params: plain("equipmentId", "slotMask", "slot1", "slot2", "slot3")},
	{Code: 72, Name: "CLOSE_GOSSIP", Description: "Close the gossip window", Template: "Close Gossip"},
	{Code: 73, Name: "TRIGGER_TIMED_EVENT", Description: "Fire a timed event", Template: "Trigger Timed Event {a1}",
		Params: plain("timedEventId")},
	{Code: 74, Name: "REMOVE_TIMED_EVENT", Description: "Remove a timed event", Template: "Remove Timed Event {a1}",
		Params: plain("timedEventId")},
	{Code: 75, Name: "ADD_AURA", Description: "Apply an aura", Template: "Add Aura '{spell:a1}'",
		Params: params(param("spell", RoleSpell))},
	{Code: 76, Name: "OVERRIDE_SCRIPT_BASE_OBJECT", Description: "Run further actions as the target", Template: "Override Base Object Script"},
	{Code: 77, Name: "RESET_SCRIPT_BASE_OBJECT", Description: "Restore the script owner", Template: "Reset Base Object Script"},
	{Code: 78, Name: "CALL_SCRIPT_RESET", Description: "Reset all scripts", Template: "Reset All Scripts"},
	{Code: 79, Name: "SET_RANGED_MOVEMENT", Description: "Set ranged chase distance", Template: "Set Ranged Movement",
		Params: plain("distance", "angle")},
	{Code: 80, Name: "CALL_TIMED_ACTIONLIST", Description: "Run a timed action list", Template: "Run Script",
		Params: params(param("actionList", RoleActionList), enum("timerType", timerTypes), param("allowOverride", RoleBool))},
	{Code: 81, Name: "SET_NPC_FLAG", Description: "Set npc flags", Template: "Set Npc Flag{flags:a1}",
		Params: params(flags("flags", npcFlags))},
	{Code: 82, Name: "ADD_NPC_FLAG", Description: "Add npc flags", Template: "Add Npc Flag{flags:a1}",
		Params: params(flags("flags", npcFlags))},
	{Code: 83, Name: "REMOVE_NPC_FLAG", Description: "Remove npc flags", Template: "Remove Npc Flag{flags:a1}",
		Params: params(flags("flags", npcFlags))},
	{Code: 84, Name: "SIMPLE_TALK", Description: "Say a text group without a talk target", Template: "Say Line {a1}",
		Params: plain("textGroupId")},
	{Code: 85, Name: "SELF_CAST", Description: "Make the target cast on itself", Template: "Self Cast '{spell:a1}'",
		Params: params(param("spell", RoleSpell), flags("castFlags", castFlags), param("triggerFlags", RolePlain), param("limitTargets", RolePlain))},
	{Code: 86, Name: "CROSS_CAST", Description: "Make other units cast at the target", Template: "Cross Cast '{spell:a1}'",
		Params: params(param("spell", RoleSpell), flags("castFlags", castFlags), param("casterTargetType", RolePlain), param("casterParam1", RolePlain), param("casterParam2", RolePlain), param("casterParam3", RolePlain))},
	{Code: 87, Name: "CALL_RANDOM_TIMED_ACTIONLIST", Description: "Run one of up to six timed action lists", Template: "Run Random Script",
		Params: params(param("list1", RoleActionList), param("list2", RoleActionList), param("list3", RoleActionList), param("list4", RoleActionList), param("list5", RoleActionList), param("list6", RoleActionList))},
	{Code: 88, Name: "CALL_RANDOM_RANGE_TIMED_ACTIONLIST", Description: "Run a random timed action list from a range", Template: "Run Random Script",
		Params: params(param("listMin", RoleActionList), param("listMax", RoleActionList))},
	{Code: 89, Name: "RANDOM_MOVE", Description: "Wander randomly", Template: "Start Random Movement",
		Params: plain("radius")},
	{Code: 90, Name: "SET_UNIT_FIELD_BYTES_1", Description: "Set stand state bytes", Template: "Set Flag {label:a1}",
		Params: params(enum("value", bytes1Flags), param("type", RolePlain))},
	{Code: 91, Name: "REMOVE_UNIT_FIELD_BYTES_1", Description: "Remove stand state bytes", Template: "Remove Flag {label:a1}",
		Params: params(enum("value", bytes1Flags), param("type", RolePlain))},
	{Code: 92, Name: "INTERRUPT_SPELL", Description: "Interrupt a spell cast", Template: "Interrupt Spell '{spell:a2}'",
		Params: params(param("withDelayed", RoleBool), param("spell", RoleSpell), param("instant", RoleBool))},
	{Code: 93, Name: "SEND_GO_CUSTOM_ANIM", Description: "Play a gameobject animation", Template: "Send Custom Animation {a1}",
		Params: plain("animId")},
	{Code: 94, Name: "SET_DYNAMIC_FLAG", Description: "Set dynamic flags", Template: "Set Dynamic Flag{flags:a1}",
		Params: params(flags("flags", dynamicFlags))},
	{Code: 95, Name: "ADD_DYNAMIC_FLAG", Description: "Add dynamic flags", Template: "Add Dynamic Flag{flags:a1}",
		Params: params(flags("flags", dynamicFlags))},
	{Code: 96, Name: "REMOVE_DYNAMIC_FLAG", Description: "Remove dynamic flags", Template: "Remove Dynamic Flag{flags:a1}",
		Params: params(flags("flags", dynamicFlags))},
	{Code: 97, Name: "JUMP_TO_POS", Description: "Jump to the target position", Template: "Jump To Pos",
		Params: plain("speedXY", "speedZ")},
	{Code: 98, Name: "SEND_GOSSIP_MENU", Description: "Send a gossip menu", Template: "Send Gossip",
		Params: plain("menuId", "npcTextId")},
	{Code: 99, Name: "GO_SET_LOOT_STATE", Description: "Set gameobject loot state", Template: "Set Lootstate {label:a1}",
		Params: params(enum("state", goStates))},
	{Code: 100, Name: "SEND_TARGET_TO_TARGET", Description: "Send stored targets to the target", Template: "Send Target {a1}",
		Params: plain("varId")},
	{Code: 101, Name: "SET_HOME_POS", Description: "Set the home position", Template: "Set Home Position"},
	{Code: 102, Name: "SET_HEALTH_REGEN", Description: "Toggle health regeneration", Template: "Set Health Regeneration {onoff:a1}",
		Params: params(param("regen", RoleBool))},
	{Code: 103, Name: "SET_ROOT", Description: "Toggle rooted", Template: "Set Rooted {onoff:a1}",
		Params: params(param("root", RoleBool))},
	{Code: 104, Name: "SET_GO_FLAG", Description: "Set gameobject flags", Template: "Set Gameobject Flag{flags:a1}",
		Params: params(flags("flags", goFlags))},
	{Code: 105, Name: "ADD_GO_FLAG", Description: "Add gameobject flags", Template: "Add Gameobject Flag{flags:a1}",
		Params: params(flags("flags", goFlags))},
	{Code: 106, Name: "REMOVE_GO_FLAG", Description: "Remove gameobject flags", Template: "Remove Gameobject Flag{flags:a1}",
		Params: params(flags("flags", goFlags))},
	{Code: 107, Name: "SUMMON_CREATURE_GROUP", Description: "Summon a creature group", Template: "Summon Creature Group {a1}",
		Params: params(param("groupId", RolePlain), param("attackInvoker", RoleBool))},
	{Code: 108, Name: "SET_POWER", Description: "Set a power value", Template: "Set {label:a1} To {a2}",
		Params: params(enum("powerType", powerTypes), param("value", RolePlain))},
	{Code: 109, Name: "ADD_POWER", Description: "Add to a power value", Template: "Add {a2} {label:a1}",
		Params: params(enum("powerType", powerTypes), param("value", RolePlain))},
	{Code: 110, Name: "REMOVE_POWER", Description: "Remove from a power value", Template: "Remove {a2} {label:a1}",
		Params: params(enum("powerType", powerTypes), param("value", RolePlain))},
	{Code: 111, Name: "GAME_EVENT_STOP", Description: "Stop a game event", Template: "Stop game event {a1}",
		Params: plain("gameEventId")},
	{Code: 112, Name: "GAME_EVENT_START", Description: "Start a game event", Template: "Start game event {a1}",
		Params: plain("gameEventId")},
	{Code: 113, Name: "START_CLOSEST_WAYPOINT", Description: "Start the closest of several waypoint paths", Template: "Start closest Waypoint {a1} - {a2}",
		Params: plain("path1", "path2", "path3", "path4", "path5", "path6")},
	{Code: 114, Name: "MOVE_OFFSET", Description: "Move by an offset", Template: "Move Up"},
	{Code: 115, Name: "RANDOM_SOUND", Description: "Play a random sound", Template: "Play Random Sound",
		Params: concat(plain("sound1", "sound2", "sound3", "sound4"), params(param("onlySelf", RoleBool)))},
	{Code: 116, Name: "SET_CORPSE_DELAY", Description: "Set the corpse delay", Template: "Set Corpse Delay to {a1}s",
		Params: plain("timer")},
	{Code: 117, Name: "DISABLE_EVADE", Description: "Toggle evade", Template: "{disable:a1} Evade",
		Params: params(param("disable", RoleBool))},
	{Code: 118, Name: "GO_SET_GO_STATE", Description: "Set gameobject state", Template: "Set GO State To {a1}",
		Params: params(enum("state", goStates))},
	{Code: 121, Name: "SET_SIGHT_DIST", Description: "Set sight distance", Template: "Set Sight Distance to {a1}y",
		Params: plain("distance")},
	{Code: 122, Name: "FLEE", Description: "Flee", Template: "Flee",
		Params: params(param("fleeTime", RoleMillis))},
	{Code: 123, Name: "ADD_THREAT", Description: "Modify threat by a flat amount", Template: "Modify Threat",
		Params: plain("increase", "decrease")},
	{Code: 124, Name: "LOAD_EQUIPMENT", Description: "Load an equipment template", Template: "Load Equipment Id {a1}",
		Params: params(param("equipmentId", RolePlain), param("force", RoleBool))},
	{Code: 125, Name: "TRIGGER_RANDOM_TIMED_EVENT", Description: "Fire a random timed event from a range", Template: "Trigger Random Timed Event Between {a1}-{a2}",
		Params: plain("idMin", "idMax")},
	{Code: 126, Name: "REMOVE_ALL_GAMEOBJECTS", Description: "Remove every owned gameobject", Template: "Remove All Gameobjects"},
	{Code: 134, Name: "INVOKER_CAST", Description: "Make the invoker cast at the target", Template: "Invoker Cast '{spell:a1}'",
		Params: params(param("spell", RoleSpell), flags("castFlags", castFlags))},
	{Code: 135, Name: "PLAY_CINEMATIC", Description: "Play a cinematic", Template: "Play Cinematic",
		Params: plain("cinematicId")},
	{Code: 136, Name: "SET_MOVEMENT_SPEED", Description: "Set a movement speed", Template: "Set {label:a1} Speed to {a2}.{a3}",
		Params: params(enum("movementType", movementTypes), param("speedInteger", RolePlain), param("speedFraction", RolePlain))},
	{Code: 142, Name: "SET_HEALTH_PCT", Description: "Set health percentage", Template: "Set HP to {a1}%",
		Params: params(param("hpPct", RolePercent))},
	{Code: 201, Name: "MOVE_TO_POS_TARGET", Description: "Move to a stored position", Template: "Move to pos target {a1}",
		Params: plain("pointId")},
	{Code: 203, Name: "EXIT_VEHICLE", Description: "Exit the vehicle", Template: "Exit vehicle"},
	{Code: 204, Name: "SET_UNIT_MOVEMENT_FLAGS", Description: "Set movement flags", Template: "Set unit movement flags to {a1}",
		Params: plain("flags")},
	{Code: 205, Name: "SET_COMBAT_DISTANCE", Description: "Set combat distance", Template: "Set combat distance to {a1}",
		Params: plain("distance")},
	{Code: 206, Name: "DISMOUNT", Description: "Dismount", Template: "Dismount"},
	{Code: 207, Name: "SET_HOVER", Description: "Toggle hover", Template: "Set hover {a1}",
		Params: params(param("enable", RoleBool))},
	{Code: 208, Name: "ADD_IMMUNITY", Description: "Add an immunity", Template: "Add immunity Type: {a1}, Id: {a2}, Value: {a3}",
		Params: plain("type", "id", "value")},
	{Code: 209, Name: "REMOVE_IMMUNITY", Description: "Remove an immunity", Template: "Remove immunity Type: {a1}, Id: {a2}, Value: {a3}",
		Params: plain("type", "id", "value")},
	{Code: 210, Name: "FALL", Description: "Fall to the ground", Template: "Fall"},
	{Code: 211, Name: "SET_EVENT_FLAG_RESET", Description: "Reset event flags", Template: "Flag reset {a1}",
		Params: params(param("reset", RoleBool))},
	{Code: 212, Name: "STOP_MOTION", Description: "Stop movement", Template: "Stop motion (StopMoving: {a1}, MovementExpired: {a2})",
		Params: params(param("stopMoving", RoleBool), param("movementExpired", RoleBool))},
	{Code: 213, Name: "NO_ENVIRONMENT_UPDATE", Description: "Skip environment updates", Template: "No environment update"},
	{Code: 214, Name: "ZONE_UNDER_ATTACK", Description: "Send zone under attack warning", Template: "Zone under attack"},
	{Code: 215, Name: "LOAD_GRID", Description: "Load the grid", Template: "Load Grid"},
	{Code: 216, Name: "MUSIC", Description: "Play music", Template: "Play music SoundId: {a1}, OnlySelf: {a2}, Type: {a3}",
		Params: params(param("soundId", RolePlain), param("onlySelf", RoleBool), param("type", RolePlain))},
	{Code: 217, Name: "RANDOM_MUSIC", Description: "Play random music", Template: "Play random music OnlySelf: {a5}, Type: {a6}",
		Params: concat(plain("sound1", "sound2", "sound3", "sound4"), params(param("onlySelf", RoleBool), param("type", RolePlain)))},
	{Code: 218, Name: "CUSTOM_CAST", Description: "Cast with custom base points", Template: "Custom Cast '{spell:a1}'",
		Params: params(param("spell", RoleSpell), flags("castFlags", castFlags), param("bp0", RolePlain), param("bp1", RolePlain), param("bp2", RolePlain))},
	{Code: 219, Name: "CONE_SUMMON", Description: "Summon creatures in a cone", Template: "Do Cone Summon",
		Params: concat(params(param("creatureEntry", RoleCreature), param("duration", RoleMillis)), plain("distanceBetweenRings", "distanceBetweenSummons", "coneLength", "coneAngle"))},
	{Code: 220, Name: "PLAYER_TALK", Description: "Make the player say a string", Template: "Player Talk String {a1}",
		Params: params(param("textId", RolePlain), param("yell", RoleBool))},
	{Code: 221, Name: "VORTEX_SUMMON", Description: "Summon creatures in a vortex", Template: "Do Vortex Summon",
		Params: concat(params(param("creatureEntry", RoleCreature), param("duration", RoleMillis)), plain("spiralScaling", "spiralAppearance", "rangeMax", "phiDelta"))},
	{Code: 222, Name: "CU_ENCOUNTER_START", Description: "Reset cooldowns on encounter start", Template: "Reset Cooldowns"},
	{Code: 223, Name: "DO_ACTION", Description: "Call DoAction on the target", Template: "Do Action ID {a1}",
		Params: plain("actionId")},
	{Code: 224, Name: "ATTACK_STOP", Description: "Stop attacking", Template: "Stop Attack"},
	{Code: 225, Name: "SET_GUID", Description: "Send the invoker guid to the target", Template: "Send Guid",
		Params: plain("invokerGuid", "index")},
	{Code: 226, Name: "SCRIPTED_SPAWN", Description: "Control a scripted spawn", Template: "Scripted Spawn {onoff:a1} Creature",
		Params: concat(params(param("state", RoleBool)), repeat("spawnTimer"), plain("respawnDelay", "corpseDelay"), params(param("dontDespawn", RoleBool)))},
	{Code: 227, Name: "SET_SCALE", Description: "Set model scale", Template: "Set Scale to {a1}%",
		Params: params(param("scale", RolePercent))},
	{Code: 228, Name: "RADIAL_SUMMON", Description: "Summon creatures in a circle", Template: "Do Radial Summon",
		Params: concat(params(param("creatureEntry", RoleCreature), param("duration", RoleMillis)), plain("repetitions", "startAngle", "stepAngle", "distance"))},
	{Code: 229, Name: "PLAY_SPELL_VISUAL", Description: "Play a spell visual kit", Template: "Play Visual Kit Id {a1}",
		Params: plain("visualId")},
	{Code: 230, Name: "FOLLOW_GROUP", Description: "Follow in formation", Template: "Follow Type {label:a2}",
		Params: params(param("followState", RoleBool), enum("followType", followTypes), param("distance", RolePlain))},
	{Code: 231, Name: "SET_ORIENTATION_TARGET", Description: "Face the target", Template: "Set Target Orientation",
		Params: plain("type", "targetParam1", "targetParam2", "targetParam3", "targetParam4")},
	{Code: 232, Name: "WAYPOINT_START", Description: "Start a waypoint path", Template: "Start Path {a1}",
		Params: params(param("pathId", RolePlain), param("repeat", RoleBool), param("pathSource", RolePlain))},
	{Code: 233, Name: "WAYPOINT_DATA_RANDOM", Description: "Start a random waypoint path", Template: "Start Random Path {a1}-{a2}",
		Params: params(param("pathIdMin", RolePlain), param("pathIdMax", RolePlain), param("repeat", RoleBool))},
	{Code: 234, Name: "MOVEMENT_STOP", Description: "Stop movement", Template: "Stop Movement"},
	{Code: 235, Name: "MOVEMENT_PAUSE", Description: "Pause movement", Template: "Pause Movement",
		Params: params(param("timer", RoleMillis))},
	{Code: 236, Name: "MOVEMENT_RESUME", Description: "Resume movement", Template: "Resume Movement",
		Params: params(param("timerOverride", RoleMillis))},
	{Code: 237, Name: "WORLD_SCRIPT", Description: "Run a world state script", Template: "Run World State Script: Event: {a1}, Param: {a2}",
		Params: plain("eventId", "param")},
	{Code: 238, Name: "DISABLE_REWARD", Description: "Disable kill rewards", Template: "Disable reward: Disable Reputation {onoff:a1}, Disable Loot {onoff:a2}",
		Params: params(param("reputation", RoleBool), param("loot", RoleBool))},
}
