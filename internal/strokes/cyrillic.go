package strokes

// cyrillicLetters reuses Latin geometry for letters that share a shape.
func cyrillicLetters(latin map[string]LetterStrokeData) []LetterStrokeData {
	same := func(id, latinID string) LetterStrokeData {
		l := latin[latinID].Clone()
		l.ID = id
		return l
	}
	bowl := func(x float64) Stroke {
		return join(path(x, .48, x+.2, .48), arc(x+.2, .665, .2, .185, -90, 90, 5), path(x, .85))
	}
	e := latin["E"]
	return []LetterStrokeData{
		same("А", "A"),
		letter("Б",
			line(.3, .15, .3, .85),
			line(.3, .15, .72, .15),
			bowl(.3)),
		same("В", "B"),
		letter("Г",
			line(.3, .15, .3, .85),
			line(.3, .15, .72, .15)),
		letter("Д",
			line(.4, .15, .3, .75),
			join(line(.4, .15, .7, .15), line(.7, .15, .7, .75)),
			join(line(.2, .9, .2, .75), line(.2, .75, .8, .75), line(.8, .75, .8, .9))),
		same("Е", "E"),
		letter("Ё", append(e.Clone().Strokes, dot(.4, .06), dot(.6, .06))...),
		letter("Ж",
			line(.5, .15, .5, .85),
			join(line(.2, .15, .5, .5), line(.5, .5, .2, .85)),
			join(line(.8, .15, .5, .5), line(.5, .5, .8, .85))),
		letter("З", join(arc(.48, .32, .2, .17, -160, 90, 6), arc(.48, .67, .22, .18, -90, 160, 6))),
		letter("И",
			line(.27, .15, .27, .85),
			join(line(.27, .85, .73, .15), line(.73, .15, .73, .85))),
		letter("Й",
			line(.27, .15, .27, .85),
			join(line(.27, .85, .73, .15), line(.73, .15, .73, .85)),
			arc(.5, .04, .1, .05, 180, 0, 3)),
		same("К", "K"),
		letter("Л", join(
			line(.2, .85, .45, .15),
			line(.45, .15, .75, .15),
			line(.75, .15, .75, .85))),
		same("М", "M"),
		same("Н", "H"),
		same("О", "O"),
		letter("П", join(
			line(.27, .85, .27, .15),
			line(.27, .15, .73, .15),
			line(.73, .15, .73, .85))),
		same("Р", "P"),
		same("С", "C"),
		same("Т", "T"),
		letter("У",
			line(.25, .15, .5, .55),
			line(.75, .15, .35, .85)),
		letter("Ф",
			arc(.5, .45, .27, .18, -90, -450, 10),
			line(.5, .1, .5, .9)),
		same("Х", "X"),
		letter("Ц",
			join(line(.27, .15, .27, .78), line(.27, .78, .78, .78), line(.78, .78, .78, .92)),
			line(.7, .15, .7, .78)),
		letter("Ч",
			join(line(.28, .15, .28, .45), line(.28, .45, .72, .5)),
			line(.72, .15, .72, .85)),
		letter("Ш",
			join(line(.2, .15, .2, .85), line(.2, .85, .8, .85), line(.8, .85, .8, .15)),
			line(.5, .15, .5, .85)),
		letter("Щ",
			join(line(.2, .15, .2, .8), line(.2, .8, .85, .8), line(.85, .8, .85, .92)),
			line(.5, .15, .5, .8),
			line(.75, .15, .75, .8)),
		letter("Ъ",
			join(line(.2, .15, .35, .15), line(.35, .15, .35, .85)),
			bowl(.35)),
		letter("Ы",
			line(.22, .15, .22, .85),
			bowl(.22),
			line(.78, .15, .78, .85)),
		letter("Ь",
			line(.3, .15, .3, .85),
			bowl(.3)),
		letter("Э",
			arc(.5, .5, .27, .35, -135, 135, 9),
			line(.4, .5, .77, .5)),
		letter("Ю",
			line(.2, .15, .2, .85),
			line(.2, .5, .4, .5),
			arc(.6, .5, .2, .35, -90, -450, 10)),
		letter("Я",
			join(line(.7, .85, .7, .15), line(.7, .15, .5, .15), arc(.5, .32, .2, .17, -90, -270, 5), line(.5, .49, .7, .49)),
			line(.45, .49, .25, .85)),
	}
}
