package strokes

// Hebrew block letters. Strokes start on the right where the letter is
// written right to left.
func hebrewLetters() []LetterStrokeData {
	return []LetterStrokeData{
		letter("א",
			line(.25, .18, .75, .82),
			line(.72, .18, .68, .45),
			line(.42, .5, .3, .82)),
		letter("ב",
			join(line(.28, .2, .68, .2), line(.68, .2, .68, .8)),
			line(.8, .8, .22, .8)),
		letter("ג",
			join(line(.42, .2, .6, .2), line(.6, .2, .62, .8)),
			line(.6, .55, .38, .8)),
		letter("ד",
			line(.2, .2, .8, .2),
			line(.68, .2, .68, .82)),
		letter("ה",
			join(line(.22, .2, .75, .2), line(.75, .2, .75, .82)),
			line(.3, .4, .3, .82)),
		letter("ו", join(line(.42, .2, .55, .2), line(.55, .2, .55, .82))),
		letter("ז",
			line(.35, .2, .65, .2),
			line(.5, .2, .5, .82)),
		letter("ח", join(
			line(.28, .82, .28, .2),
			line(.28, .2, .72, .2),
			line(.72, .2, .72, .82))),
		letter("ט", join(
			line(.45, .4, .28, .2),
			line(.28, .2, .28, .8),
			line(.28, .8, .72, .8),
			line(.72, .8, .72, .2))),
		letter("י", line(.5, .2, .5, .42)),
		letter("כ", join(line(.25, .2, .62, .2), arc(.62, .5, .15, .3, -90, 90, 5), line(.62, .8, .25, .8))),
		letter("ל", join(
			line(.32, .08, .32, .35),
			line(.32, .35, .7, .35),
			line(.7, .35, .55, .85))),
		letter("מ",
			join(line(.25, .2, .7, .2), line(.7, .2, .72, .82), line(.72, .82, .45, .82)),
			line(.32, .2, .25, .82)),
		letter("נ", join(
			line(.45, .2, .62, .2),
			line(.62, .2, .62, .8),
			line(.62, .8, .35, .8))),
		letter("ס", arc(.5, .5, .25, .3, -180, 180, 12)),
		letter("ע",
			line(.28, .2, .55, .7),
			join(line(.72, .2, .55, .7), line(.55, .7, .3, .85))),
		letter("פ",
			join(line(.25, .2, .72, .2), line(.72, .2, .72, .8), line(.72, .8, .25, .8)),
			line(.4, .2, .4, .45)),
		letter("צ",
			line(.72, .2, .62, .5),
			join(line(.28, .2, .68, .8), line(.68, .8, .25, .8))),
		letter("ק",
			join(line(.25, .2, .72, .2), line(.72, .2, .72, .5)),
			line(.32, .4, .32, .95)),
		letter("ר", join(line(.25, .2, .65, .2), arc(.65, .32, .1, .12, -90, 0, 3), line(.75, .32, .75, .82))),
		letter("ש",
			join(line(.78, .2, .72, .8), line(.72, .8, .28, .8), line(.28, .8, .22, .2)),
			line(.5, .2, .5, .6)),
		letter("ת",
			join(line(.22, .2, .72, .2), line(.72, .2, .72, .82)),
			join(line(.32, .2, .32, .82), line(.32, .82, .22, .82))),
	}
}
