// shared/catalog/maps.go
package catalog

// Overwatch mode names as the overlays expect them.
const (
	ModeControl    = "Control"
	ModeEscort     = "Escort"
	ModeFlashpoint = "Flashpoint"
	ModeHybrid     = "Hybrid"
	ModePush       = "Push"
	ModeClash      = "Clash"
)

var OverwatchMaps = []Map{
	{ID: 1, Name: "Antarctic Peninsula", Image: "/mapImages/overwatch/antarctic_peninsula.png", Mode: ModeControl},
	{ID: 2, Name: "Busan", Image: "/mapImages/overwatch/busan.jpg", Mode: ModeControl},
	{ID: 3, Name: "Ilios", Image: "/mapImages/overwatch/ilios.jpg", Mode: ModeControl},
	{ID: 4, Name: "Lijiang Tower", Image: "/mapImages/overwatch/lijiang_tower.jpg", Mode: ModeControl},
	{ID: 5, Name: "Nepal", Image: "/mapImages/overwatch/nepal.jpg", Mode: ModeControl},
	{ID: 6, Name: "Oasis", Image: "/mapImages/overwatch/oasis.jpg", Mode: ModeControl},
	{ID: 7, Name: "Samoa", Image: "/mapImages/overwatch/samoa.jpg", Mode: ModeControl},
	{ID: 8, Name: "Circuit Royal", Image: "/mapImages/overwatch/circuit_royal.jpg", Mode: ModeEscort},
	{ID: 9, Name: "Dorado", Image: "/mapImages/overwatch/dorado.jpg", Mode: ModeEscort},
	{ID: 10, Name: "Havana", Image: "/mapImages/overwatch/havana.jpg", Mode: ModeEscort},
	{ID: 11, Name: "Junkertown", Image: "/mapImages/overwatch/junkertown.jpg", Mode: ModeEscort},
	{ID: 12, Name: "Rialto", Image: "/mapImages/overwatch/rialto.jpg", Mode: ModeEscort},
	{ID: 13, Name: "Route 66", Image: "/mapImages/overwatch/route_66.jpg", Mode: ModeEscort},
	{ID: 14, Name: "Shambali Monastery", Image: "/mapImages/overwatch/shambali_monastery.jpg", Mode: ModeEscort},
	{ID: 15, Name: "Blizzard World", Image: "/mapImages/overwatch/blizzard_world.jpg", Mode: ModeHybrid},
	{ID: 16, Name: "Eichenwalde", Image: "/mapImages/overwatch/eichenwalde.jpg", Mode: ModeHybrid},
	{ID: 17, Name: "Hollywood", Image: "/mapImages/overwatch/hollywood.jpg", Mode: ModeHybrid},
	{ID: 18, Name: "King's Row", Image: "/mapImages/overwatch/kings_row.jpg", Mode: ModeHybrid},
	{ID: 19, Name: "Midtown", Image: "/mapImages/overwatch/midtown.jpg", Mode: ModeHybrid},
	{ID: 20, Name: "Numbani", Image: "/mapImages/overwatch/numbani.jpg", Mode: ModeHybrid},
	{ID: 21, Name: "Paraiso", Image: "/mapImages/overwatch/paraiso.jpg", Mode: ModeHybrid},
	{ID: 22, Name: "Colosseo", Image: "/mapImages/overwatch/colosseo.jpg", Mode: ModePush},
	{ID: 23, Name: "Esperanca", Image: "/mapImages/overwatch/esperanca.jpg", Mode: ModePush},
	{ID: 24, Name: "New Queen Street", Image: "/mapImages/overwatch/new_queen_street.jpg", Mode: ModePush},
	{ID: 25, Name: "Runasapi", Image: "/mapImages/overwatch/runasapi.jpg", Mode: ModePush},
	{ID: 26, Name: "New Junk City", Image: "/mapImages/overwatch/new_junk_city.jpg", Mode: ModeFlashpoint},
	{ID: 27, Name: "Suravasa", Image: "/mapImages/overwatch/suravasa.jpg", Mode: ModeFlashpoint},
	{ID: 28, Name: "Hanaoka", Image: "/mapImages/overwatch/hanaoka.jpg", Mode: ModeClash},
	{ID: 29, Name: "Throne of Anubis", Image: "/mapImages/overwatch/throne_of_anubis.jpg", Mode: ModeClash},
}

var ValorantMaps = []Map{
	{ID: 1, Name: "Bind", Image: "/mapImages/valorant/bind.jpg"},
	{ID: 2, Name: "Haven", Image: "/mapImages/valorant/haven.jpg"},
	{ID: 3, Name: "Split", Image: "/mapImages/valorant/split.jpg"},
	{ID: 4, Name: "Ascent", Image: "/mapImages/valorant/ascent.jpg"},
	{ID: 5, Name: "Icebox", Image: "/mapImages/valorant/icebox.jpg"},
	{ID: 6, Name: "Breeze", Image: "/mapImages/valorant/breeze.jpg"},
	{ID: 7, Name: "Fracture", Image: "/mapImages/valorant/fracture.jpg"},
	{ID: 8, Name: "Pearl", Image: "/mapImages/valorant/pearl.jpg"},
	{ID: 9, Name: "Lotus", Image: "/mapImages/valorant/lotus.jpeg"},
	{ID: 10, Name: "Sunset", Image: "/mapImages/valorant/sunset.png"},
	{ID: 11, Name: "Abyss", Image: "/mapImages/valorant/abyss.avif"},
}

// Marvel Rivals mode names.
const (
	ModeConvoy      = "Convoy"
	ModeConvergence = "Convergence"
	ModeDomination  = "Domination"
)

var MarvelRivalsMaps = []Map{
	{ID: 1, Name: "Yggsgard: Royal Palace", Image: "/mapImages/rivals/royal_palace.jpg", Mode: ModeDomination},
	{ID: 2, Name: "Tokyo 2099: Shin-Shibuya", Image: "/mapImages/rivals/shin_shibuya.jpg", Mode: ModeConvergence},
	{ID: 3, Name: "Tokyo 2099: Spider-Islands", Image: "/mapImages/rivals/spider_islands.jpg", Mode: ModeConvoy},
	{ID: 4, Name: "Klyntar: Symbiotic Surface", Image: "/mapImages/rivals/symbiotic_surface.jpg", Mode: ModeConvoy},
	{ID: 5, Name: "Intergalactic Empire of Wakanda: Hall of Djalia", Image: "/mapImages/rivals/hall_of_djalia.jpg", Mode: ModeDomination},
	{ID: 6, Name: "Intergalactic Empire of Wakanda: Birnin T'Challa", Image: "/mapImages/rivals/birnin_tchalla.jpg", Mode: ModeConvergence},
	{ID: 7, Name: "Hydra Charteris Base: Hell's Heaven", Image: "/mapImages/rivals/hells_heaven.jpg", Mode: ModeDomination},
	{ID: 8, Name: "Empire of Eternal Night: Midtown", Image: "/mapImages/rivals/midtown.jpg", Mode: ModeConvoy},
}
