package object

import "testing"

func TestCallBindsSelfAndParams(t *testing.T) {
	cls := NewClass("Adder", nil)
	cls.AddMethod(&Method{
		Name:   "add",
		Params: []string{"n"},
		Body: selfAwareNode{fn: func(c *Closure) *Holder {
			self, _ := c.Get("self")
			n, _ := c.Get("n")
			inst := self.Value.(*Instance)
			base, _ := inst.GetField("base")
			return Own(base.Value.(Number) + n.Value.(Number))
		}},
	})

	inst := NewInstance(cls)
	inst.SetField("base", Own(Number(10)))

	result, err := inst.Call("add", []*Holder{Own(Number(5))}, nil)
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if result.Value.(Number) != 15 {
		t.Errorf("got %v, want 15", result.Value)
	}
}

func TestCallMissingMethodErrors(t *testing.T) {
	cls := NewClass("Empty", nil)
	inst := NewInstance(cls)
	if _, err := inst.Call("nope", nil, nil); err == nil {
		t.Error("expected error calling undefined method")
	}
}

func TestCallDoesNotMutateMethodDefinition(t *testing.T) {
	cls := NewClass("C", nil)
	cls.AddMethod(&Method{
		Name:   "identity",
		Params: []string{"x"},
		Body: selfAwareNode{fn: func(c *Closure) *Holder {
			x, _ := c.Get("x")
			return x
		}},
	})
	inst := NewInstance(cls)

	if _, err := inst.Call("identity", []*Holder{Own(Number(1))}, nil); err != nil {
		t.Fatal(err)
	}
	// A second call with a different argument must see the new value,
	// proving the method's Params were never overwritten by the first.
	r, err := inst.Call("identity", []*Holder{Own(Number(2))}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if r.Value.(Number) != 2 {
		t.Errorf("got %v, want 2 (method definition must stay immutable across calls)", r.Value)
	}
}

type selfAwareNode struct {
	fn func(*Closure) *Holder
}

func (s selfAwareNode) Execute(c *Closure, _ *Context) *Holder { return s.fn(c) }
