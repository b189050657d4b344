package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/notargets/gotsunami/InputParameters"
	"github.com/notargets/gotsunami/model_problems/Tsunami"
)

var (
	csvFile string
	cells   = []int{50, 100, 200, 400, 800}
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study, written by -run")
	runPtr := flag.Bool("run", false, "run the dam break study for both solvers and write it to csvFile")
	endTimePtr := flag.Float64("endTime", 0.5, "end time of each run")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if *runPtr {
		var studies []*ConvergenceStudy
		for _, solver := range []string{"roe", "fwave"} {
			cs, err := RunStudy(solver, 0.5, *endTimePtr, cells)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			studies = append(studies, cs)
		}
		if err := writeCSV(csvFile, studies); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	titles := make([]string, 0, len(studies))
	for title := range studies {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		cs := studies[title]
		fmt.Printf("Title = %s, CFL = %5.2f\n", cs.title, cs.CFL)
		hOrder, huOrder := cs.Orders()
		for i := range cs.numCells {
			fmt.Printf("%d, %v, %v, %v, %v, order h = %5.2f, order hu = %5.2f\n",
				cs.numCells[i], cs.hL1[i], cs.huL1[i], cs.hMAX[i], cs.huMAX[i], hOrder[i], huOrder[i])
		}
	}
}

type ConvergenceStudy struct {
	title      string
	numCells   []int
	CFL        float64
	hL1, huL1  []float64
	hMAX, huMAX []float64
}

func NewConvergenceStudy(title string, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		CFL:   CFL,
	}
}

func (cs *ConvergenceStudy) Add(numCells int, hL1, huL1, hMAX, huMAX float64) {
	cs.numCells = append(cs.numCells, numCells)
	cs.hL1 = append(cs.hL1, hL1)
	cs.huL1 = append(cs.huL1, huL1)
	cs.hMAX = append(cs.hMAX, hMAX)
	cs.huMAX = append(cs.huMAX, huMAX)
}

// Orders returns the observed L1 orders between consecutive resolutions, the
// first entry is zero
func (cs *ConvergenceStudy) Orders() (hOrder, huOrder []float64) {
	hOrder, huOrder = make([]float64, len(cs.numCells)), make([]float64, len(cs.numCells))
	for i := 1; i < len(cs.numCells); i++ {
		ratio := math.Log(float64(cs.numCells[i]) / float64(cs.numCells[i-1]))
		hOrder[i] = math.Log(cs.hL1[i-1]/cs.hL1[i]) / ratio
		huOrder[i] = math.Log(cs.huL1[i-1]/cs.huL1[i]) / ratio
	}
	return
}

// RunStudy solves the 1D dam break at each resolution and measures the
// error against the exact solution at the final time
func RunStudy(solver string, CFL, endTime float64, cells []int) (cs *ConvergenceStudy, err error) {
	var (
		dir string
	)
	if dir, err = os.MkdirTemp("", "convOrder"); err != nil {
		return
	}
	defer os.RemoveAll(dir)
	cs = NewConvergenceStudy(solver, CFL)
	for _, n := range cells {
		var (
			c  *Tsunami.Tsunami
			ip = InputParameters.NewInputParametersTsunami()
		)
		ip.Solver, ip.CFL, ip.EndTime, ip.CellsX = solver, CFL, endTime, n
		ip.OutputPrefix = filepath.Join(dir, fmt.Sprintf("%s_%d", solver, n))
		ip.OutputSteps = math.MaxInt32
		if c, err = Tsunami.NewTsunami(ip); err != nil {
			return
		}
		if err = c.Run(false); err != nil {
			return
		}
		X, H, HU, ok := c.ExactSolution(c.SimTime)
		if !ok {
			return nil, fmt.Errorf("no exact solution for setup %s", ip.Setup)
		}
		var (
			h, hu                  = c.Patch.GetHeight(), c.Patch.GetMomentumX()
			hL1, huL1, hMAX, huMAX float64
		)
		for i := range X {
			dh, dhu := math.Abs(h[i]-H[i]), math.Abs(hu[i]-HU[i])
			hL1 += dh * c.Dxy
			huL1 += dhu * c.Dxy
			hMAX = math.Max(hMAX, dh)
			huMAX = math.Max(huMAX, dhu)
		}
		cs.Add(n, hL1, huL1, hMAX, huMAX)
	}
	return
}

func writeCSV(csvFile string, studies []*ConvergenceStudy) (err error) {
	var (
		f *os.File
	)
	if f, err = os.Create(csvFile); err != nil {
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	_ = w.Write([]string{"title", "cells", "CFL", "hL1", "huL1", "hMAX", "huMAX"})
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, cs := range studies {
		for i, n := range cs.numCells {
			_ = w.Write([]string{cs.title, strconv.Itoa(n), ff(cs.CFL),
				ff(cs.hL1[i]), ff(cs.huL1[i]), ff(cs.hMAX[i]), ff(cs.huMAX[i])})
		}
	}
	w.Flush()
	return w.Error()
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records                [][]string
		err                    error
		f                      *os.File
		ok                     bool
		cs                     *ConvergenceStudy
		cfl                    float64
		hL1, huL1, hMAX, huMAX float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		title, ntxt, cfltxt := rec[0], rec[1], rec[2]
		n, _ := strconv.Atoi(ntxt)
		_, _ = fmt.Sscanf(cfltxt, "%f", &cfl)
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title, cfl)
			studies[title] = cs
		}
		_, _ = fmt.Sscanf(rec[3], "%g", &hL1)
		_, _ = fmt.Sscanf(rec[4], "%g", &huL1)
		_, _ = fmt.Sscanf(rec[5], "%g", &hMAX)
		_, _ = fmt.Sscanf(rec[6], "%g", &huMAX)
		cs.Add(n, hL1, huL1, hMAX, huMAX)
	}
	return
}
