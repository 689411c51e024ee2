package schemaguard_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/zero-day-ai/schemaguard"
	"github.com/zero-day-ai/schemaguard/schema"
	"github.com/zero-day-ai/schemaguard/schemaerr"
)

// ExampleNew demonstrates validating a value against a union type.
func ExampleNew() {
	v, err := schemaguard.New()
	if err != nil {
		log.Fatal(err)
	}

	node := schema.OneOfTypes(schema.AtomNumber, schema.AtomString, schema.AtomBoolean)
	res, err := v.Validate(context.Background(), nil, &node)
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range res.Errors {
		fmt.Println(r)
	}

	// Output: [/] Null value found, but a number, a string or a boolean is required
}

// ExampleValidator_ValidateJSON demonstrates that decoded integers and
// fractions keep distinct kinds.
func ExampleValidator_ValidateJSON() {
	v, err := schemaguard.New()
	if err != nil {
		log.Fatal(err)
	}

	var node schema.JSON
	if err := json.Unmarshal([]byte(`{"type": "integer"}`), &node); err != nil {
		log.Fatal(err)
	}

	for _, doc := range []string{`42`, `4.2`} {
		res, err := v.ValidateJSON(context.Background(), []byte(doc), &node)
		if err != nil {
			log.Fatal(err)
		}
		if res.Valid() {
			fmt.Printf("%s: ok\n", doc)
			continue
		}
		fmt.Printf("%s: %s\n", doc, res.Errors[0].Message)
	}

	// Output:
	// 42: ok
	// 4.2: Double value found, but an integer is required
}

// ExampleValidator_ValidateAt demonstrates a fault raised by a broken schema.
func ExampleValidator_ValidateAt() {
	v, err := schemaguard.New()
	if err != nil {
		log.Fatal(err)
	}

	node := schema.OneOfTypes(schema.AtomString, "banana")
	_, err = v.ValidateAt(context.Background(), "x", &node, "/name")
	fmt.Println(errors.Is(err, schemaerr.ErrNoWording))

	// Output: true
}
