package flowspec

// Spec — описание вычислительного графа (YAML или JSON).
//
//	name: pricing
//	nodes:
//	  - name: subtotal
//	    func: mul
//	    inputs: [price, quantity]
//	    outputs: [subtotal]
//	  - name: total
//	    func: add
//	    inputs: [subtotal, shipping]
//	    outputs: [total]
type Spec struct {
	// Version — версия формата описания.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Name — имя графа (используется в логах).
	Name string `yaml:"name,omitempty" json:"name,omitempty"`

	// Description — описание назначения графа.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Nodes — узлы в порядке регистрации.
	Nodes []NodeDef `yaml:"nodes" json:"nodes"`
}

// NodeDef — описание одного узла.
type NodeDef struct {
	// Name — уникальное имя узла.
	Name string `yaml:"name" json:"name"`

	// Func — имя функции из каталога steps.
	Func string `yaml:"func" json:"func"`

	// Inputs — имена потребляемых переменных.
	Inputs []string `yaml:"inputs,omitempty" json:"inputs,omitempty"`

	// Outputs — имена производимых переменных.
	Outputs []string `yaml:"outputs" json:"outputs"`

	// Params — параметры функции.
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}
