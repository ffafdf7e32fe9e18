package strokes

var (
	latinO = arc(.5, .5, .27, .35, -90, -450, 12)
	latinP = []Stroke{
		line(.3, .15, .3, .85),
		join(path(.3, .15, .5, .15), arc(.5, .33, .2, .18, -90, 90, 5), path(.3, .51)),
	}
)

func latinLetters() []LetterStrokeData {
	return []LetterStrokeData{
		letter("A",
			path(.5, .15, .375, .5, .25, .85),
			path(.5, .15, .625, .5, .75, .85),
			line(.34, .6, .66, .6)),
		letter("B",
			line(.3, .15, .3, .85),
			join(path(.3, .15, .5, .15), arc(.5, .32, .17, .17, -90, 90, 5), path(.3, .49)),
			join(path(.3, .49, .52, .49), arc(.52, .67, .19, .18, -90, 90, 5), path(.3, .85))),
		letter("C", arc(.5, .5, .27, .35, -45, -315, 9)),
		letter("D",
			line(.3, .15, .3, .85),
			join(path(.3, .15, .45, .15), arc(.45, .5, .27, .35, -90, 90, 7), path(.3, .85))),
		letter("E",
			line(.3, .15, .3, .85),
			line(.3, .15, .72, .15),
			line(.3, .5, .65, .5),
			line(.3, .85, .72, .85)),
		letter("F",
			line(.3, .15, .3, .85),
			line(.3, .15, .72, .15),
			line(.3, .5, .65, .5)),
		letter("G", join(arc(.5, .5, .27, .35, -40, -360, 9), path(.6, .5))),
		letter("H",
			line(.28, .15, .28, .85),
			line(.72, .15, .72, .85),
			line(.28, .5, .72, .5)),
		letter("I",
			line(.5, .15, .5, .85),
			line(.35, .15, .65, .15),
			line(.35, .85, .65, .85)),
		letter("J", join(line(.65, .15, .65, .65), arc(.47, .65, .18, .2, 0, 180, 5))),
		letter("K",
			line(.3, .15, .3, .85),
			line(.72, .15, .3, .55),
			line(.42, .45, .72, .85)),
		letter("L", join(line(.3, .15, .3, .85), line(.3, .85, .72, .85))),
		letter("M", join(
			line(.22, .85, .22, .15),
			line(.22, .15, .5, .6),
			line(.5, .6, .78, .15),
			line(.78, .15, .78, .85))),
		letter("N", join(
			line(.27, .85, .27, .15),
			line(.27, .15, .73, .85),
			line(.73, .85, .73, .15))),
		letter("O", latinO),
		letter("P", latinP...),
		letter("Q", latinO, line(.55, .68, .78, .9)),
		letter("R", latinP[0], latinP[1], line(.45, .51, .74, .85)),
		letter("S", join(arc(.5, .32, .22, .17, -20, -270, 6), arc(.5, .67, .23, .18, -90, 160, 6))),
		letter("T",
			line(.22, .15, .78, .15),
			line(.5, .15, .5, .85)),
		letter("U", join(line(.27, .15, .27, .6), arc(.5, .6, .23, .25, 180, 0, 5), line(.73, .6, .73, .15))),
		letter("V", join(line(.22, .15, .5, .85), line(.5, .85, .78, .15))),
		letter("W", join(
			line(.15, .15, .32, .85),
			line(.32, .85, .5, .4),
			line(.5, .4, .68, .85),
			line(.68, .85, .85, .15))),
		letter("X",
			line(.25, .15, .75, .85),
			line(.75, .15, .25, .85)),
		letter("Y",
			join(line(.25, .15, .5, .5), line(.5, .5, .5, .85)),
			line(.75, .15, .5, .5)),
		letter("Z", join(
			line(.25, .15, .75, .15),
			line(.75, .15, .25, .85),
			line(.25, .85, .75, .85))),
	}
}

func digitLetters() []LetterStrokeData {
	return []LetterStrokeData{
		letter("0", arc(.5, .5, .22, .35, -90, -450, 12)),
		letter("1", join(line(.38, .3, .52, .15), line(.52, .15, .52, .85))),
		letter("2", join(
			arc(.5, .33, .2, .18, -160, 20, 6),
			line(.69, .39, .28, .85),
			line(.28, .85, .74, .85))),
		letter("3", join(arc(.48, .32, .2, .17, -160, 90, 6), arc(.48, .67, .22, .18, -90, 160, 6))),
		letter("4",
			join(line(.6, .15, .25, .6), line(.25, .6, .78, .6)),
			line(.6, .15, .6, .85)),
		letter("5", join(
			line(.72, .15, .35, .15),
			line(.35, .15, .32, .47),
			arc(.5, .64, .22, .2, -130, 150, 7))),
		letter("6", join(line(.68, .15, .4, .45), arc(.5, .65, .2, .2, -150, 210, 10))),
		letter("7", join(line(.25, .15, .75, .15), line(.75, .15, .42, .85))),
		letter("8", join(arc(.5, .32, .18, .17, 90, -270, 9), arc(.5, .67, .21, .18, -90, 270, 9))),
		letter("9", join(arc(.5, .35, .2, .2, 0, -360, 10), line(.7, .35, .62, .85))),
	}
}
