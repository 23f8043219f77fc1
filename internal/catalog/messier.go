package catalog

import "errors"

// ErrNotFound is returned for designations outside the catalog.
var ErrNotFound = errors.New("no such Messier object")

// messier is indexed by number-1. Coordinates are J2000, rounded to a tenth
// of a minute, from the SEDS Messier database.
var messier = []Object{
	{1, "Crab Nebula", SupernovaRemnant, "Taurus", 8.4, ra(5, 34, 30), dec(22, 1, 0)},
	{2, "", GlobularCluster, "Aquarius", 6.5, ra(21, 33, 30), dec(0, -49, 0)},
	{3, "", GlobularCluster, "Canes Venatici", 6.2, ra(13, 42, 12), dec(28, 23, 0)},
	{4, "", GlobularCluster, "Scorpius", 5.6, ra(16, 23, 36), dec(-26, 32, 0)},
	{5, "", GlobularCluster, "Serpens", 5.6, ra(15, 18, 36), dec(2, 5, 0)},
	{6, "Butterfly Cluster", OpenCluster, "Scorpius", 4.2, ra(17, 40, 6), dec(-32, 13, 0)},
	{7, "Ptolemy Cluster", OpenCluster, "Scorpius", 3.3, ra(17, 53, 54), dec(-34, 49, 0)},
	{8, "Lagoon Nebula", ClusterAndNebula, "Sagittarius", 6.0, ra(18, 3, 48), dec(-24, 23, 0)},
	{9, "", GlobularCluster, "Ophiuchus", 7.7, ra(17, 19, 12), dec(-18, 31, 0)},
	{10, "", GlobularCluster, "Ophiuchus", 6.6, ra(16, 57, 6), dec(-4, 6, 0)},
	{11, "Wild Duck Cluster", OpenCluster, "Scutum", 5.8, ra(18, 51, 6), dec(-6, 16, 0)},
	{12, "", GlobularCluster, "Ophiuchus", 6.7, ra(16, 47, 12), dec(-1, 57, 0)},
	{13, "Hercules Cluster", GlobularCluster, "Hercules", 5.8, ra(16, 41, 42), dec(36, 28, 0)},
	{14, "", GlobularCluster, "Ophiuchus", 7.6, ra(17, 37, 36), dec(-3, 15, 0)},
	{15, "", GlobularCluster, "Pegasus", 6.2, ra(21, 30, 0), dec(12, 10, 0)},
	{16, "Eagle Nebula", ClusterAndNebula, "Serpens", 6.0, ra(18, 18, 48), dec(-13, 47, 0)},
	{17, "Omega Nebula", ClusterAndNebula, "Sagittarius", 6.0, ra(18, 20, 48), dec(-16, 11, 0)},
	{18, "", OpenCluster, "Sagittarius", 7.5, ra(18, 19, 54), dec(-17, 8, 0)},
	{19, "", GlobularCluster, "Ophiuchus", 6.8, ra(17, 2, 36), dec(-26, 16, 0)},
	{20, "Trifid Nebula", Nebula, "Sagittarius", 6.3, ra(18, 2, 36), dec(-23, 2, 0)},
	{21, "", OpenCluster, "Sagittarius", 6.5, ra(18, 4, 36), dec(-22, 30, 0)},
	{22, "Sagittarius Cluster", GlobularCluster, "Sagittarius", 5.1, ra(18, 36, 24), dec(-23, 54, 0)},
	{23, "", OpenCluster, "Sagittarius", 6.9, ra(17, 56, 48), dec(-19, 1, 0)},
	{24, "Sagittarius Star Cloud", StarCloud, "Sagittarius", 4.6, ra(18, 16, 54), dec(-18, 29, 0)},
	{25, "", OpenCluster, "Sagittarius", 4.6, ra(18, 31, 36), dec(-19, 15, 0)},
	{26, "", OpenCluster, "Scutum", 8.0, ra(18, 45, 12), dec(-9, 24, 0)},
	{27, "Dumbbell Nebula", PlanetaryNebula, "Vulpecula", 7.4, ra(19, 59, 36), dec(22, 43, 0)},
	{28, "", GlobularCluster, "Sagittarius", 6.8, ra(18, 24, 30), dec(-24, 52, 0)},
	{29, "", OpenCluster, "Cygnus", 7.1, ra(20, 23, 54), dec(38, 32, 0)},
	{30, "", GlobularCluster, "Capricornus", 7.2, ra(21, 40, 24), dec(-23, 11, 0)},
	{31, "Andromeda Galaxy", Galaxy, "Andromeda", 3.4, ra(0, 42, 42), dec(41, 16, 0)},
	{32, "", Galaxy, "Andromeda", 8.1, ra(0, 42, 42), dec(40, 52, 0)},
	{33, "Triangulum Galaxy", Galaxy, "Triangulum", 5.7, ra(1, 33, 54), dec(30, 39, 0)},
	{34, "", OpenCluster, "Perseus", 5.5, ra(2, 42, 0), dec(42, 47, 0)},
	{35, "", OpenCluster, "Gemini", 5.3, ra(6, 8, 54), dec(24, 20, 0)},
	{36, "", OpenCluster, "Auriga", 6.3, ra(5, 36, 6), dec(34, 8, 0)},
	{37, "", OpenCluster, "Auriga", 6.2, ra(5, 52, 24), dec(32, 33, 0)},
	{38, "", OpenCluster, "Auriga", 7.4, ra(5, 28, 24), dec(35, 50, 0)},
	{39, "", OpenCluster, "Cygnus", 4.6, ra(21, 32, 12), dec(48, 26, 0)},
	{40, "Winnecke 4", DoubleStar, "Ursa Major", 8.4, ra(12, 22, 24), dec(58, 5, 0)},
	{41, "", OpenCluster, "Canis Major", 4.5, ra(6, 46, 0), dec(-20, 44, 0)},
	{42, "Orion Nebula", ClusterAndNebula, "Orion", 4.0, ra(5, 35, 24), dec(-5, 27, 0)},
	{43, "De Mairan's Nebula", Nebula, "Orion", 9.0, ra(5, 35, 36), dec(-5, 16, 0)},
	{44, "Beehive Cluster", OpenCluster, "Cancer", 3.7, ra(8, 40, 6), dec(19, 59, 0)},
	{45, "Pleiades", OpenCluster, "Taurus", 1.6, ra(3, 47, 0), dec(24, 7, 0)},
	{46, "", OpenCluster, "Puppis", 6.0, ra(7, 41, 48), dec(-14, 49, 0)},
	{47, "", OpenCluster, "Puppis", 5.2, ra(7, 36, 36), dec(-14, 30, 0)},
	{48, "", OpenCluster, "Hydra", 5.5, ra(8, 13, 48), dec(-5, 48, 0)},
	{49, "", Galaxy, "Virgo", 8.4, ra(12, 29, 48), dec(8, 0, 0)},
	{50, "", OpenCluster, "Monoceros", 6.3, ra(7, 3, 12), dec(-8, 20, 0)},
	{51, "Whirlpool Galaxy", Galaxy, "Canes Venatici", 8.4, ra(13, 29, 54), dec(47, 12, 0)},
	{52, "", OpenCluster, "Cassiopeia", 7.3, ra(23, 24, 12), dec(61, 35, 0)},
	{53, "", GlobularCluster, "Coma Berenices", 7.6, ra(13, 12, 54), dec(18, 10, 0)},
	{54, "", GlobularCluster, "Sagittarius", 7.6, ra(18, 55, 6), dec(-30, 29, 0)},
	{55, "", GlobularCluster, "Sagittarius", 6.3, ra(19, 40, 0), dec(-30, 58, 0)},
	{56, "", GlobularCluster, "Lyra", 8.3, ra(19, 16, 36), dec(30, 11, 0)},
	{57, "Ring Nebula", PlanetaryNebula, "Lyra", 8.8, ra(18, 53, 36), dec(33, 2, 0)},
	{58, "", Galaxy, "Virgo", 9.7, ra(12, 37, 42), dec(11, 49, 0)},
	{59, "", Galaxy, "Virgo", 9.6, ra(12, 42, 0), dec(11, 39, 0)},
	{60, "", Galaxy, "Virgo", 8.8, ra(12, 43, 42), dec(11, 33, 0)},
	{61, "", Galaxy, "Virgo", 9.7, ra(12, 21, 54), dec(4, 28, 0)},
	{62, "", GlobularCluster, "Ophiuchus", 6.5, ra(17, 1, 12), dec(-30, 7, 0)},
	{63, "Sunflower Galaxy", Galaxy, "Canes Venatici", 8.6, ra(13, 15, 48), dec(42, 2, 0)},
	{64, "Black Eye Galaxy", Galaxy, "Coma Berenices", 8.5, ra(12, 56, 42), dec(21, 41, 0)},
	{65, "", Galaxy, "Leo", 9.3, ra(11, 18, 54), dec(13, 5, 0)},
	{66, "", Galaxy, "Leo", 8.9, ra(11, 20, 12), dec(12, 59, 0)},
	{67, "", OpenCluster, "Cancer", 6.1, ra(8, 50, 24), dec(11, 49, 0)},
	{68, "", GlobularCluster, "Hydra", 7.8, ra(12, 39, 30), dec(-26, 45, 0)},
	{69, "", GlobularCluster, "Sagittarius", 7.6, ra(18, 31, 24), dec(-32, 21, 0)},
	{70, "", GlobularCluster, "Sagittarius", 7.9, ra(18, 43, 12), dec(-32, 18, 0)},
	{71, "", GlobularCluster, "Sagitta", 8.2, ra(19, 53, 48), dec(18, 47, 0)},
	{72, "", GlobularCluster, "Aquarius", 9.3, ra(20, 53, 30), dec(-12, 32, 0)},
	{73, "", Asterism, "Aquarius", 9.0, ra(20, 58, 54), dec(-12, 38, 0)},
	{74, "Phantom Galaxy", Galaxy, "Pisces", 9.4, ra(1, 36, 42), dec(15, 47, 0)},
	{75, "", GlobularCluster, "Sagittarius", 8.5, ra(20, 6, 6), dec(-21, 55, 0)},
	{76, "Little Dumbbell Nebula", PlanetaryNebula, "Perseus", 10.1, ra(1, 42, 24), dec(51, 34, 0)},
	{77, "Cetus A", Galaxy, "Cetus", 8.9, ra(2, 42, 42), dec(0, -1, 0)},
	{78, "", ReflectionNebula, "Orion", 8.3, ra(5, 46, 42), dec(0, 3, 0)},
	{79, "", GlobularCluster, "Lepus", 7.7, ra(5, 24, 30), dec(-24, 33, 0)},
	{80, "", GlobularCluster, "Scorpius", 7.3, ra(16, 17, 0), dec(-22, 59, 0)},
	{81, "Bode's Galaxy", Galaxy, "Ursa Major", 6.9, ra(9, 55, 36), dec(69, 4, 0)},
	{82, "Cigar Galaxy", Galaxy, "Ursa Major", 8.4, ra(9, 55, 48), dec(69, 41, 0)},
	{83, "Southern Pinwheel Galaxy", Galaxy, "Hydra", 7.6, ra(13, 37, 0), dec(-29, 52, 0)},
	{84, "", Galaxy, "Virgo", 9.1, ra(12, 25, 6), dec(12, 53, 0)},
	{85, "", Galaxy, "Coma Berenices", 9.1, ra(12, 25, 24), dec(18, 11, 0)},
	{86, "", Galaxy, "Virgo", 8.9, ra(12, 26, 12), dec(12, 57, 0)},
	{87, "Virgo A", Galaxy, "Virgo", 8.6, ra(12, 30, 48), dec(12, 23, 0)},
	{88, "", Galaxy, "Coma Berenices", 9.6, ra(12, 32, 0), dec(14, 25, 0)},
	{89, "", Galaxy, "Virgo", 9.8, ra(12, 35, 42), dec(12, 33, 0)},
	{90, "", Galaxy, "Virgo", 9.5, ra(12, 36, 48), dec(13, 10, 0)},
	{91, "", Galaxy, "Coma Berenices", 10.2, ra(12, 35, 24), dec(14, 30, 0)},
	{92, "", GlobularCluster, "Hercules", 6.4, ra(17, 17, 6), dec(43, 8, 0)},
	{93, "", OpenCluster, "Puppis", 6.0, ra(7, 44, 36), dec(-23, 52, 0)},
	{94, "Cat's Eye Galaxy", Galaxy, "Canes Venatici", 8.2, ra(12, 50, 54), dec(41, 7, 0)},
	{95, "", Galaxy, "Leo", 9.7, ra(10, 44, 0), dec(11, 42, 0)},
	{96, "", Galaxy, "Leo", 9.2, ra(10, 46, 48), dec(11, 49, 0)},
	{97, "Owl Nebula", PlanetaryNebula, "Ursa Major", 9.9, ra(11, 14, 48), dec(55, 1, 0)},
	{98, "", Galaxy, "Coma Berenices", 10.1, ra(12, 13, 48), dec(14, 54, 0)},
	{99, "", Galaxy, "Coma Berenices", 9.9, ra(12, 18, 48), dec(14, 25, 0)},
	{100, "", Galaxy, "Coma Berenices", 9.3, ra(12, 22, 54), dec(15, 49, 0)},
	{101, "Pinwheel Galaxy", Galaxy, "Ursa Major", 7.9, ra(14, 3, 12), dec(54, 21, 0)},
	{102, "Spindle Galaxy", Galaxy, "Draco", 9.9, ra(15, 6, 30), dec(55, 46, 0)},
	{103, "", OpenCluster, "Cassiopeia", 7.4, ra(1, 33, 12), dec(60, 42, 0)},
	{104, "Sombrero Galaxy", Galaxy, "Virgo", 8.0, ra(12, 40, 0), dec(-11, 37, 0)},
	{105, "", Galaxy, "Leo", 9.3, ra(10, 47, 48), dec(12, 35, 0)},
	{106, "", Galaxy, "Canes Venatici", 8.4, ra(12, 19, 0), dec(47, 18, 0)},
	{107, "", GlobularCluster, "Ophiuchus", 7.9, ra(16, 32, 30), dec(-13, 3, 0)},
	{108, "", Galaxy, "Ursa Major", 10.0, ra(11, 11, 30), dec(55, 40, 0)},
	{109, "", Galaxy, "Ursa Major", 9.8, ra(11, 57, 36), dec(53, 23, 0)},
	{110, "", Galaxy, "Andromeda", 8.5, ra(0, 40, 24), dec(41, 41, 0)},
}
