package catalog

import "github.com/resurgence-tools/edjb/pkg/models"

// modPacks is ordered as the mod selector presents it. Names match the
// .pak names listed in ElDewrito's mods/mod_db.json.
var modPacks = []ModPack{
	{
		Name: "ED++",
		Maps: []models.MapRef{
			{DisplayName: "Snowbound", MapName: "snowbound"},
			{DisplayName: "Isolation", MapName: "isolation"},
			{DisplayName: "Orbital", MapName: "spacecamp"},
			{DisplayName: "Construct", MapName: "construct"},
			{DisplayName: "Epitaph", MapName: "salvation"},
			{DisplayName: "Rat's Nest", MapName: "armory"},
			{DisplayName: "Cold Storage", MapName: "chillout"},
			{DisplayName: "Assembly", MapName: "descent"},
			{DisplayName: "Longshore", MapName: "docks"},
			{DisplayName: "Citadel", MapName: "fortress"},
			{DisplayName: "Ghost Town", MapName: "ghosttown"},
			{DisplayName: "Blackout", MapName: "lockout"},
			{DisplayName: "Heretic", MapName: "midship"},
			{DisplayName: "Sandbox", MapName: "sandbox"},
			{DisplayName: "Avalanche", MapName: "sidewinder"},
			{DisplayName: "Foundry", MapName: "warehouse"},
			{DisplayName: "Waterfall", MapName: "s3d_waterfall"},
			{DisplayName: "Lockup", MapName: "s3d_lockout"},
			{DisplayName: "Skybridge", MapName: "s3d_sky_bridgenew"},
			{DisplayName: "Flatgrass", MapName: "flat"},
			{DisplayName: "Vadum", MapName: "mp_shadow_bridge"},
			{DisplayName: "Cavity", MapName: "cavity"},
			{DisplayName: "Collapse", MapName: "collapse"},
		},
	},
	{
		Name: "H3EK Custom Maps",
		Maps: []models.MapRef{
			{DisplayName: "Badlands", MapName: "badlands"},
			{DisplayName: "Elysium", MapName: "elysium"},
			{DisplayName: "Generators", MapName: "generator_rooms"},
			{DisplayName: "Municipality", MapName: "test_day"},
			{DisplayName: "Box", MapName: "box"},
			{DisplayName: "Conflux", MapName: "conflux"},
			{DisplayName: "Dynamis", MapName: "dynamis"},
			{DisplayName: "Goliath", MapName: "goliath"},
			{DisplayName: "Hallowed", MapName: "hallowed"},
			{DisplayName: "Live Fire", MapName: "hh_livefire"},
			{DisplayName: "Homefront", MapName: "homefront"},
			{DisplayName: "Huge High Ground", MapName: "deadlock_huge"},
			{DisplayName: "Overpass", MapName: "mombasa_bridge"},
			{DisplayName: "Sandblast", MapName: "sandtrap_full"},
			{DisplayName: "Skedar", MapName: "skedar"},
		},
	},
	{
		Name: "H3EK H2 Maps",
		Maps: []models.MapRef{
			{DisplayName: "Anchor Point", MapName: "anchor_point"},
			{DisplayName: "Backwash", MapName: "backwash"},
			{DisplayName: "Burial Mounds", MapName: "burial_mounds"},
			{DisplayName: "Colossus", MapName: "colossus"},
			{DisplayName: "Containment", MapName: "containment"},
			{DisplayName: "Convergence", MapName: "convergence"},
			{DisplayName: "Waterworks", MapName: "waterworks"},
			{DisplayName: "Beaver Creek", MapName: "beavercreek"},
			{DisplayName: "Foundation", MapName: "foundation"},
			{DisplayName: "Lockout", MapName: "lockoutfix"},
			{DisplayName: "Relic", MapName: "dune"},
			{DisplayName: "Coagulation", MapName: "resuscitation"},
			{DisplayName: "Sanctuary", MapName: "sancr"},
			{DisplayName: "Warlock", MapName: "warlock"},
		},
	},
	{
		Name: "Halo 3: Pack",
		Maps: []models.MapRef{
			{DisplayName: "Rat's Nest", MapName: "armory"},
			{DisplayName: "Cold Storage", MapName: "chillout"},
			{DisplayName: "Construct", MapName: "construct"},
			{DisplayName: "Assembly", MapName: "descent"},
			{DisplayName: "Longshore", MapName: "docks"},
			{DisplayName: "Citadel", MapName: "fortress"},
			{DisplayName: "Ghost Town", MapName: "ghosttown"},
			{DisplayName: "Isolation", MapName: "isolation"},
			{DisplayName: "Blackout", MapName: "lockout"},
			{DisplayName: "Heretic", MapName: "midship"},
			{DisplayName: "Sandbox", MapName: "sandbox"},
			{DisplayName: "Avalanche", MapName: "sidewinder"},
			{DisplayName: "Snowbound", MapName: "snowbound"},
			{DisplayName: "Orbital", MapName: "spacecamp"},
			{DisplayName: "Foundry", MapName: "warehouse"},
			{DisplayName: "Epitaph", MapName: "salvation"},
		},
	},
	{
		Name: "Halo Kart ED",
		Maps: []models.MapRef{
			{DisplayName: "Nokonoko Beach", MapName: "koopatroopabeach"},
		},
	},
	{
		Name: "Halo: Online",
		Maps: []models.MapRef{
			{DisplayName: "Sky Bridge", MapName: "s3d_sky_bridgenew"},
			{DisplayName: "Lockup", MapName: "s3d_lockout"},
			{DisplayName: "Powerhouse", MapName: "s3d_powerhouse"},
			{DisplayName: "Waterfall", MapName: "s3d_waterfall"},
		},
	},
	{
		Name: "MediEvilGraveyard",
		Maps: []models.MapRef{
			{DisplayName: "The Graveyard", MapName: "medievil_graveyard"},
		},
	},
	{
		Name: "Ratchet & Clank",
		Maps: []models.MapRef{
			{DisplayName: "Wupash Nebula", MapName: "wupash_nebula"},
			{DisplayName: "Station Q9", MapName: "annihilation_nation_arena"},
			{DisplayName: "Maktar Resort", MapName: "galactic_gladiators"},
			{DisplayName: "Megacorp Games", MapName: "megacorp_games_arena"},
			{DisplayName: "Bakisi Isles", MapName: "bakisi_isles"},
			{DisplayName: "Hoven Gorge", MapName: "hoven_gorge"},
		},
	},
	{
		Name: "Reach Anniversary Multiplayer",
		Maps: []models.MapRef{
			{DisplayName: "Sword Base", MapName: "20_sword_slayer"},
			{DisplayName: "Powerhouse", MapName: "30_settlement"},
			{DisplayName: "Spire", MapName: "35_island"},
			{DisplayName: "Zealot", MapName: "45_aftship"},
			{DisplayName: "Countdown", MapName: "45_launch_station"},
			{DisplayName: "Boardwalk", MapName: "50_panopticon"},
			{DisplayName: "Reflection", MapName: "52_ivory_tower"},
			{DisplayName: "Boneyard", MapName: "70_boneyard"},
			{DisplayName: "Forge World", MapName: "forge_halo"},
			{DisplayName: "Battle Canyon", MapName: "cex_beaver_creek"},
			{DisplayName: "Penance", MapName: "cex_damnation"},
			{DisplayName: "High Noon", MapName: "cex_hangemhigh"},
			{DisplayName: "Breakneck", MapName: "cex_headlong"},
			{DisplayName: "Solitary", MapName: "cex_prisoner"},
			{DisplayName: "Ridgeline", MapName: "cex_timberland"},
			{DisplayName: "Condemned", MapName: "condemned"},
			{DisplayName: "Breakpoint", MapName: "dlc_invasion"},
			{DisplayName: "Tempest", MapName: "dlc_medium"},
			{DisplayName: "Anchor 9", MapName: "dlc_slayer"},
			{DisplayName: "Highlands", MapName: "trainingpreserve"},
		},
	},
	{
		Name: "Resident Evil 4",
		Maps: []models.MapRef{
			{DisplayName: "Village", MapName: "re4_village"},
			{DisplayName: "Castle", MapName: "re4_castle"},
			{DisplayName: "Waterworld", MapName: "re4_waterworld"},
			{DisplayName: "Island", MapName: "re4_island"},
		},
	},
	{
		Name: "TBP - Geonosis",
		Maps: []models.MapRef{
			{DisplayName: "Geonosis", MapName: "geonosis"},
		},
	},
	{
		Name: "TBP - Mos Eisley",
		Maps: []models.MapRef{
			{DisplayName: "Mos Eisley", MapName: "mos_eisley"},
		},
	},
	{
		Name: "TBP - Scarif",
		Maps: []models.MapRef{
			{DisplayName: "Scarif", MapName: "scarif"},
		},
	},
}
