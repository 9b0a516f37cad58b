package tree

func q(text string, yes, no Node) *Question { return &Question{Text: text, Yes: yes, No: no} }
func g(name string) *Guess                  { return &Guess{Name: name} }

// Default returns the hand-authored seed knowledge base: a fresh tree of
// Hollow Knight characters. Pure; every call builds a new tree.
func Default() Node {
	return q("¿Es un jefe o te enfrentas a él/ella en combate principal?",
		q("¿Es una entidad divina o regente del Reino?",
			q("¿Está asociada directamente a la luz y los sueños?",
				g("Radiancia"),
				g("Rey Pálido"),
			),
			q("¿Se presenta en plural o en equipo durante el combate?",
				g("Señores Mantis"),
				q("¿Usa una aguja e hilo en combate?",
					g("Hornet"),
					q("¿Lidera una troupe y es teatral?",
						g("Grimm"),
						q("¿Es un recipiente silencioso sellado?",
							g("Hollow Knight"),
							g("Nosk"),
						),
					),
				),
			),
		),
		q("¿Es cartógrafo y tararea mientras hace mapas?",
			g("Cornifer"),
			q("¿Es fanfarrón y presume 57 preceptos?",
				g("Zote el Poderoso"),
				q("¿Es un artista y maestro del aguijón retirado?",
					g("Maestro del Aguijón Sheo"),
					q("¿Es aventurera con gran armadura?",
						g("Cloth"),
						q("¿Es un explorador amable con casco azul?",
							g("Quirrel"),
							q("¿Es una joven romántica que admira a Zote?",
								g("Bretta"),
								q("¿Busca gloria en el coliseo y tiene un destino trágico?",
									g("Tiso"),
									g("El Caballero"),
								),
							),
						),
					),
				),
			),
		),
	)
}
