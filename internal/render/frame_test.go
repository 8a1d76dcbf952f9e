package render

import (
	"reflect"
	"testing"

	"snake/internal/entities"
	"snake/internal/grid"
)

func TestFrameLaysOutSnakeThenFood(t *testing.T) {
	g, err := grid.New(400, 20)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	snake := []entities.Position{{X: 11, Y: 10}, {X: 10, Y: 10}}
	food := entities.Position{X: 5, Y: 5}

	got := Frame(snake, food, g)
	want := []Rect{
		{X: 220, Y: 200, W: 20, H: 20, Kind: KindSnake},
		{X: 200, Y: 200, W: 20, H: 20, Kind: KindSnake},
		{X: 100, Y: 100, W: 20, H: 20, Kind: KindFood},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Frame = %+v, want %+v", got, want)
	}
}

func TestFrameDoesNotMutateInput(t *testing.T) {
	g, _ := grid.New(400, 20)
	snake := []entities.Position{{X: 1, Y: 2}, {X: 1, Y: 3}}
	before := append([]entities.Position(nil), snake...)
	_ = Frame(snake, entities.Position{X: 1, Y: 2}, g)
	if !reflect.DeepEqual(snake, before) {
		t.Fatalf("snake changed: %v, want %v", snake, before)
	}
}
