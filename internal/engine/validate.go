package engine

// Check проверяет, что данные точно покрывают внешние входы графа.
//
// Проверки выполняются по порядку, первая неудачная прерывает проверку:
//   - все внешние входы заданы (ErrMissingInput)
//   - данные не задают вычисляемые выходы (ErrInputCollision)
//   - в данных нет лишних значений (ErrUnusedInput)
func (g *Graph) Check(data map[string]any) error {
	return g.snapshot().checkInputs(data)
}

func (r *registry) checkInputs(data map[string]any) error {
	required := r.requiredInputs()

	var missing []string
	for name := range required {
		if _, ok := data[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return errMissingInput(missing)
	}

	var colliding []string
	for name := range data {
		if _, produced := r.outputs[name]; produced {
			colliding = append(colliding, name)
		}
	}
	if len(colliding) > 0 {
		return errInputCollision(colliding)
	}

	var unused []string
	for name := range data {
		if !required[name] {
			unused = append(unused, name)
		}
	}
	if len(unused) > 0 {
		return errUnusedInput(unused)
	}

	return nil
}
