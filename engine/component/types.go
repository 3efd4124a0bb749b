package component

// TypeKind classifies a declared input type after best-effort resolution.
type TypeKind string

const (
	TypeString        TypeKind = "string"
	TypeInteger       TypeKind = "integer"
	TypeFloat         TypeKind = "float"
	TypeBoolean       TypeKind = "boolean"
	TypeList          TypeKind = "list"
	TypeMap           TypeKind = "map"
	TypeUnconstrained TypeKind = "unconstrained"
)

// ParamType is the advisory type of a caller-facing parameter. Name keeps the
// spelling the component declared, Kind the resolved built-in kind.
type ParamType struct {
	Name string
	Kind TypeKind
}

// IsUnconstrained reports whether resolution degraded to the advisory
// catch-all kind.
func (p ParamType) IsUnconstrained() bool {
	return p.Kind == TypeUnconstrained
}

// typeRegistry maps the type-name spellings components commonly declare to
// built-in kinds. Lookups that miss degrade to unconstrained rather than fail:
// type information is documentation, not enforcement.
var typeRegistry = map[string]TypeKind{
	"str":        TypeString,
	"string":     TypeString,
	"String":     TypeString,
	"int":        TypeInteger,
	"integer":    TypeInteger,
	"Integer":    TypeInteger,
	"float":      TypeFloat,
	"Float":      TypeFloat,
	"double":     TypeFloat,
	"bool":       TypeBoolean,
	"boolean":    TypeBoolean,
	"Boolean":    TypeBoolean,
	"list":       TypeList,
	"List":       TypeList,
	"JsonArray":  TypeList,
	"dict":       TypeMap,
	"Dict":       TypeMap,
	"map":        TypeMap,
	"Map":        TypeMap,
	"JsonObject": TypeMap,
}

// RegisterTypeName lets the embedding system teach the registry additional
// type-name spellings.
func RegisterTypeName(name string, kind TypeKind) {
	typeRegistry[name] = kind
}

// ResolveParamType resolves a declared type name against the registry.
// An empty name means the input declared no type; an unknown name keeps its
// spelling but resolves to the unconstrained kind.
func ResolveParamType(name string) ParamType {
	if name == "" {
		return ParamType{Kind: TypeUnconstrained}
	}
	if kind, ok := typeRegistry[name]; ok {
		return ParamType{Name: name, Kind: kind}
	}
	return ParamType{Name: name, Kind: TypeUnconstrained}
}
