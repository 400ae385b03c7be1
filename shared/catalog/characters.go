// shared/catalog/characters.go
package catalog

// Character roles.
const (
	RoleTank    = "Tank"
	RoleDamage  = "Damage"
	RoleSupport = "Support"
)

// OverwatchCharacters is the bannable hero roster. Ban requests are
// validated against the Name field by exact match.
var OverwatchCharacters = []Character{
	// Tank heroes
	{ID: 1, Name: "D.Va", Image: "/characterImages/overwatch/dva.png", Role: RoleTank},
	{ID: 2, Name: "Doomfist", Image: "/characterImages/overwatch/doomfist.png", Role: RoleTank},
	{ID: 3, Name: "Hazard", Image: "/characterImages/overwatch/hazard.png", Role: RoleTank},
	{ID: 4, Name: "Junker Queen", Image: "/characterImages/overwatch/junker_queen.png", Role: RoleTank},
	{ID: 5, Name: "Mauga", Image: "/characterImages/overwatch/mauga.png", Role: RoleTank},
	{ID: 6, Name: "Orisa", Image: "/characterImages/overwatch/orisa.png", Role: RoleTank},
	{ID: 7, Name: "Ramattra", Image: "/characterImages/overwatch/ramattra.png", Role: RoleTank},
	{ID: 8, Name: "Reinhardt", Image: "/characterImages/overwatch/reinhardt.png", Role: RoleTank},
	{ID: 9, Name: "Roadhog", Image: "/characterImages/overwatch/roadhog.png", Role: RoleTank},
	{ID: 10, Name: "Sigma", Image: "/characterImages/overwatch/sigma.png", Role: RoleTank},
	{ID: 11, Name: "Winston", Image: "/characterImages/overwatch/winston.png", Role: RoleTank},
	{ID: 12, Name: "Wrecking Ball", Image: "/characterImages/overwatch/wrecking_ball.png", Role: RoleTank},
	{ID: 13, Name: "Zarya", Image: "/characterImages/overwatch/zarya.png", Role: RoleTank},
	// Damage heroes
	{ID: 14, Name: "Ashe", Image: "/characterImages/overwatch/ashe.png", Role: RoleDamage},
	{ID: 15, Name: "Bastion", Image: "/characterImages/overwatch/bastion.png", Role: RoleDamage},
	{ID: 16, Name: "Cassidy", Image: "/characterImages/overwatch/cassidy.png", Role: RoleDamage},
	{ID: 17, Name: "Echo", Image: "/characterImages/overwatch/echo.png", Role: RoleDamage},
	{ID: 18, Name: "Genji", Image: "/characterImages/overwatch/genji.png", Role: RoleDamage},
	{ID: 19, Name: "Hanzo", Image: "/characterImages/overwatch/hanzo.png", Role: RoleDamage},
	{ID: 20, Name: "Junkrat", Image: "/characterImages/overwatch/junkrat.png", Role: RoleDamage},
	{ID: 21, Name: "Mei", Image: "/characterImages/overwatch/mei.png", Role: RoleDamage},
	{ID: 22, Name: "Pharah", Image: "/characterImages/overwatch/pharah.png", Role: RoleDamage},
	{ID: 23, Name: "Reaper", Image: "/characterImages/overwatch/reaper.png", Role: RoleDamage},
	{ID: 24, Name: "Sojourn", Image: "/characterImages/overwatch/sojourn.png", Role: RoleDamage},
	{ID: 25, Name: "Soldier: 76", Image: "/characterImages/overwatch/soldier_76.png", Role: RoleDamage},
	{ID: 26, Name: "Sombra", Image: "/characterImages/overwatch/sombra.png", Role: RoleDamage},
	{ID: 27, Name: "Symmetra", Image: "/characterImages/overwatch/symmetra.png", Role: RoleDamage},
	{ID: 28, Name: "Torbjorn", Image: "/characterImages/overwatch/torbjorn.png", Role: RoleDamage},
	{ID: 29, Name: "Tracer", Image: "/characterImages/overwatch/tracer.png", Role: RoleDamage},
	{ID: 30, Name: "Venture", Image: "/characterImages/overwatch/venture.png", Role: RoleDamage},
	{ID: 31, Name: "Widowmaker", Image: "/characterImages/overwatch/widowmaker.png", Role: RoleDamage},
	// Support heroes
	{ID: 32, Name: "Ana", Image: "/characterImages/overwatch/ana.png", Role: RoleSupport},
	{ID: 33, Name: "Baptiste", Image: "/characterImages/overwatch/baptiste.png", Role: RoleSupport},
	{ID: 34, Name: "Brigitte", Image: "/characterImages/overwatch/brigitte.png", Role: RoleSupport},
	{ID: 35, Name: "Freja", Image: "/characterImages/overwatch/freja.png", Role: RoleSupport},
	{ID: 36, Name: "Illari", Image: "/characterImages/overwatch/illari.png", Role: RoleSupport},
	{ID: 37, Name: "Juno", Image: "/characterImages/overwatch/juno.png", Role: RoleSupport},
	{ID: 38, Name: "Kiriko", Image: "/characterImages/overwatch/kiriko.png", Role: RoleSupport},
	{ID: 39, Name: "Lifeweaver", Image: "/characterImages/overwatch/lifeweaver.png", Role: RoleSupport},
	{ID: 40, Name: "Lucio", Image: "/characterImages/overwatch/lucio.png", Role: RoleSupport},
	{ID: 41, Name: "Mercy", Image: "/characterImages/overwatch/mercy.png", Role: RoleSupport},
	{ID: 42, Name: "Moira", Image: "/characterImages/overwatch/moira.png", Role: RoleSupport},
	{ID: 43, Name: "Zenyatta", Image: "/characterImages/overwatch/zenyatta.png", Role: RoleSupport},
}
