package relevance

import "github.com/apselect/apselect/internal/fol"

// guidosBarbers builds the eight-clause "Guido's barbers" problem:
// seven hypotheses plus one negated conjecture about shaved/2.
func guidosBarbers() []*fol.Clause {
	x1, y1 := fol.Fresh("X"), fol.Fresh("Y")
	oneShavedThenAllShaved := fol.NewClause("one_shaved_then_all_shaved", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("member", x1)),
		fol.NewLiteral(fol.Negative, fol.NewFunction("member", y1)),
		fol.NewLiteral(fol.Negative, fol.NewFunction("shaved", x1, y1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("shaved", fol.NewFunction("members"), x1)),
	)

	x2, y2 := fol.Fresh("X"), fol.Fresh("Y")
	allShavedThenOneShaved := fol.NewClause("all_shaved_then_one_shaved", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("shaved", fol.NewFunction("members"), x2)),
		fol.NewLiteral(fol.Negative, fol.NewFunction("member", y2)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("shaved", y2, x2)),
	)

	guido := fol.NewClause("guido", fol.TypeHypothesis,
		fol.NewLiteral(fol.Positive, fol.NewFunction("member", fol.NewFunction("guido"))))
	lorenzo := fol.NewClause("lorenzo", fol.TypeHypothesis,
		fol.NewLiteral(fol.Positive, fol.NewFunction("member", fol.NewFunction("lorenzo"))))
	petruchio := fol.NewClause("petruchio", fol.TypeHypothesis,
		fol.NewLiteral(fol.Positive, fol.NewFunction("member", fol.NewFunction("petruchio"))))
	cesare := fol.NewClause("cesare", fol.TypeHypothesis,
		fol.NewLiteral(fol.Positive, fol.NewFunction("member", fol.NewFunction("cesare"))))
	guidoHasShavedCesare := fol.NewClause("guido_has_shaved_cesare", fol.TypeHypothesis,
		fol.NewLiteral(fol.Positive, fol.NewFunction("shaved", fol.NewFunction("guido"), fol.NewFunction("cesare"))))

	provePetruchioHasShavedLorenzo := fol.NewClause("prove_petruchio_has_shaved_lorenzo", fol.TypeNegatedConjecture,
		fol.NewLiteral(fol.Negative, fol.NewFunction("shaved", fol.NewFunction("petruchio"), fol.NewFunction("lorenzo"))))

	return []*fol.Clause{
		oneShavedThenAllShaved,
		allShavedThenOneShaved,
		guido,
		lorenzo,
		petruchio,
		cesare,
		guidoHasShavedCesare,
		provePetruchioHasShavedLorenzo,
	}
}

// kangarooSorites builds the twelve-clause Carroll-style problem, in
// the exact order that the canonical discovery order
// [11,2,8,5,0,4,7,3,9,1,6,10] indexes into.
func kangarooSorites() []*fol.Clause {
	cat1 := fol.Fresh("Cat")
	onlyCatsInHouse := fol.NewClause("only_cats_in_house", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("in_house", cat1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("cat", cat1)),
	)

	gazer1 := fol.Fresh("Gazer")
	gazersAreSuitablePets := fol.NewClause("gazers_are_suitable_pets", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("gazer", gazer1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("suitable_pet", gazer1)),
	)

	detested1 := fol.Fresh("Detested")
	avoidDetested := fol.NewClause("avoid_detested", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("detested", detested1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("avoided", detested1)),
	)

	carnivore1 := fol.Fresh("Carnivore")
	carnivoresAreProwlers := fol.NewClause("carnivores_are_prowlers", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("carnivore", carnivore1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("prowler", carnivore1)),
	)

	cat2 := fol.Fresh("Cat")
	catsAreMiceKillers := fol.NewClause("cats_are_mice_killers", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("cat", cat2)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("mouse_killer", cat2)),
	)

	taken1 := fol.Fresh("Taken_animal")
	inHouseIfTakesToMe := fol.NewClause("in_house_if_takes_to_me", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("takes_to_me", taken1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("in_house", taken1)),
	)

	kangaroo1 := fol.Fresh("Kangaroo")
	kangaroosAreNotPets := fol.NewClause("kangaroos_are_not_pets", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("kangaroo", kangaroo1)),
		fol.NewLiteral(fol.Negative, fol.NewFunction("suitable_pet", kangaroo1)),
	)

	killer1 := fol.Fresh("Killer")
	mouseKillersAreCarnivores := fol.NewClause("mouse_killers_are_carnivores", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("mouse_killer", killer1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("carnivore", killer1)),
	)

	animal1 := fol.Fresh("Animal")
	takesToMeOrDetested := fol.NewClause("takes_to_me_or_detested", fol.TypeAxiom,
		fol.NewLiteral(fol.Positive, fol.NewFunction("takes_to_me", animal1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("detested", animal1)),
	)

	prowler1 := fol.Fresh("Prowler")
	prowlersAreGazers := fol.NewClause("prowlers_are_gazers", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("prowler", prowler1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("gazer", prowler1)),
	)

	kangarooIsAKangaroo := fol.NewClause("kangaroo_is_a_kangaroo", fol.TypeAxiom,
		fol.NewLiteral(fol.Positive, fol.NewFunction("kangaroo", fol.NewFunction("the_kangaroo"))))

	avoidKangaroo := fol.NewClause("avoid_kangaroo", fol.TypeNegatedConjecture,
		fol.NewLiteral(fol.Negative, fol.NewFunction("avoided", fol.NewFunction("the_kangaroo"))))

	return []*fol.Clause{
		onlyCatsInHouse,           // 0
		gazersAreSuitablePets,     // 1
		avoidDetested,             // 2
		carnivoresAreProwlers,     // 3
		catsAreMiceKillers,        // 4
		inHouseIfTakesToMe,        // 5
		kangaroosAreNotPets,       // 6
		mouseKillersAreCarnivores, // 7
		takesToMeOrDetested,       // 8
		prowlersAreGazers,         // 9
		kangarooIsAKangaroo,       // 10
		avoidKangaroo,             // 11
	}
}

// kangarooSoritesPlusIrrelevant builds the fourteen-clause variant:
// kangarooSorites plus two axioms ("useful/1", "jumper/1") that
// Alternating-Path never reaches but Simple-Path does.
func kangarooSoritesPlusIrrelevant() []*fol.Clause {
	base := kangarooSorites()

	cat3 := fol.Fresh("Cat")
	catNotUseful := fol.NewClause("cat_not_useful", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("useful", cat3)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("cat", cat3)),
	)

	kangaroo2 := fol.Fresh("Kangaroo")
	kangaroosAreJumpers := fol.NewClause("kangaroos_are_jumpers", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("kangaroo", kangaroo2)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("jumper", kangaroo2)),
	)

	return append(base, catNotUseful, kangaroosAreJumpers)
}

// twoLiteralConjecture builds a four-clause problem whose negated
// conjecture has two literals over the same predicate.
func twoLiteralConjecture() []*fol.Clause {
	negConjecture := fol.NewClause("c", fol.TypeNegatedConjecture,
		fol.NewLiteral(fol.Positive, fol.NewFunction("kill", fol.NewFunction("b"), fol.NewFunction("a"))),
		fol.NewLiteral(fol.Positive, fol.NewFunction("kill", fol.NewFunction("c"), fol.NewFunction("a"))),
	)

	x1, y1 := fol.Fresh("X"), fol.Fresh("Y")
	a1 := fol.NewClause("a1", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("kill", x1, y1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("hate", x1, y1)),
		fol.NewLiteral(fol.Positive, fol.NewFunction("rich", x1, y1)),
	)

	x2, y2 := fol.Fresh("X"), fol.Fresh("Y")
	a2 := fol.NewClause("a2", fol.TypeAxiom,
		fol.NewLiteral(fol.Negative, fol.NewFunction("kill", x2, y2)),
		fol.NewLiteral(fol.Negative, fol.NewFunction("rich", x2, y2)),
	)

	a3 := fol.NewClause("a3", fol.TypeAxiom,
		fol.NewLiteral(fol.Positive, fol.NewFunction("kill", fol.NewFunction("a"), fol.NewFunction("b"))))

	return []*fol.Clause{negConjecture, a1, a2, a3}
}
