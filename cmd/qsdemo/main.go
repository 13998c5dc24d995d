// SPDX-License-Identifier: MIT

// Command qsdemo inspects small matrices and runs the optim solvers on them.
//
//	qsdemo inspect --values "8,2,3,2,9,5,3,5,6"
//	qsdemo newton -v
//	qsdemo admm --lambda 0.5 --tau-inv 0.001
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/evilsocket/islazy/tui"
	"github.com/katalvlaran/qs/matrix"
	"github.com/katalvlaran/qs/optim"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const Version = "1.0.0"

var (
	app = kingpin.New("qsdemo", "Dense linear algebra kernel demo.")

	verbose   = app.Flag("verbose", "Log every solver iteration.").Short('v').Bool()
	seed      = app.Flag("seed", "Seed for random data (0 selects the default seed).").Default("0").Int64()
	precision = app.Flag("precision", "Digits after the decimal point.").Default("2").Int()
	tol       = app.Flag("tol", "Stopping tolerance on |Δf| (0 selects the solver default).").Default("0").Float64()
	maxIter   = app.Flag("max-iter", "Iteration budget.").Default(strconv.Itoa(optim.DefaultMaxIterations)).Int()

	inspectCmd  = app.Command("inspect", "Print the properties of a matrix.")
	inspectVals = inspectCmd.Flag("values", "Row-major comma separated values.").Default("8,2,3,2,9,5,3,5,6").String()
	inspectRows = inspectCmd.Flag("rows", "Row count (0 assumes a square matrix).").Default("0").Int()
	inspectRand = inspectCmd.Flag("rand", "Ignore --values and draw an n×n random matrix.").Default("0").Int()

	newtonCmd = app.Command("newton", "Minimize xᵀAx with Newton's method.")
	newtonA   = newtonCmd.Flag("a", "Square A, row-major.").Default("8,2,3,2,9,5,3,5,6").String()
	newtonX0  = newtonCmd.Flag("x0", "Initial point.").Default("4,6,9").String()

	gdCmd  = app.Command("gd", "Minimize xᵀAx with fixed-step gradient descent.")
	gdA    = gdCmd.Flag("a", "Square A, row-major.").Default("8,2,3,2,9,5,3,5,6").String()
	gdX0   = gdCmd.Flag("x0", "Initial point.").Default("4,6,9").String()
	gdStep = gdCmd.Flag("step", "Learning rate.").Default("0.001").Float64()

	admmCmd    = app.Command("admm", "Solve the lasso ½‖Ax − b‖² + λ‖x‖₁ with ADMM.")
	admmA      = admmCmd.Flag("a", "A, row-major.").Default("1,1,-1,4,2,1,1,-2,-2").String()
	admmRows   = admmCmd.Flag("rows", "Row count of A (0 assumes a square matrix).").Default("0").Int()
	admmB      = admmCmd.Flag("b", "Right-hand side.").Default("0,7,-9").String()
	admmX0     = admmCmd.Flag("x0", "Initial point.").Default("4,6,9").String()
	admmLambda = admmCmd.Flag("lambda", "ℓ₁ weight.").Default("0.5").Float64()
	admmTauInv = admmCmd.Flag("tau-inv", "Penalty τ⁻¹.").Default("0.001").Float64()
)

func main() {
	app.Version(Version)
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := currentFlags().check(); err != nil {
		log.Fatalf("%v", err)
	}

	var err error
	switch cmd {
	case inspectCmd.FullCommand():
		err = runInspect()
	case newtonCmd.FullCommand():
		err = runQuadratic("newton", *newtonA, *newtonX0, optim.Newton[float64])
	case gdCmd.FullCommand():
		err = runQuadratic("gd", *gdA, *gdX0, optim.GradientDescent[float64], optim.WithStep(*gdStep))
	case admmCmd.FullCommand():
		err = runADMM()
	}
	if err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}

// solverOptions maps the global flags onto optim options.
func solverOptions(extra ...optim.Option) []optim.Option {
	opts := []optim.Option{
		optim.WithLogger(log.StandardLogger()),
		optim.WithMaxIterations(*maxIter),
		optim.WithRand(matrix.NewRand(*seed)),
	}
	if *tol > 0 {
		opts = append(opts, optim.WithTolerance(*tol))
	}

	return append(opts, extra...)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', *precision, 64)
}

func show(title string, m *matrix.MatrixX[float64]) {
	fmt.Printf("%s %s\n\n", tui.Bold(title), m.Format(matrix.WithPrecision(*precision)))
}

func runInspect() error {
	var m *matrix.MatrixX[float64]
	var err error
	switch {
	case *inspectRand > 0:
		m, err = matrix.Rand[float64](*inspectRand, *inspectRand, matrix.NewRand(*seed))
	case *inspectRows > 0:
		m, err = matrixFrom(*inspectVals, *inspectRows, 0)
	default:
		m, err = squareFrom(*inspectVals)
	}
	if err != nil {
		return err
	}
	show("A", m)

	rows := [][]string{
		{"shape", fmt.Sprintf("%d×%d", m.Rows(), m.Cols())},
		{"symmetric", strconv.FormatBool(m.IsSym())},
	}
	if matrix.ValidateSquare(m) == nil {
		det, _ := m.Det()
		trace, _ := m.Trace()
		pd, _ := m.IsPD()
		psd, _ := m.IsPSD()
		rows = append(rows,
			[]string{"det", fmtFloat(det)},
			[]string{"trace", fmtFloat(trace)},
			[]string{"positive definite", strconv.FormatBool(pd)},
			[]string{"positive semi-definite", strconv.FormatBool(psd)},
		)
	}
	if matrix.ValidateVector(m) == nil {
		n1, _ := m.Norm1()
		n2, _ := m.Norm2()
		rows = append(rows, []string{"norm1", fmtFloat(n1)}, []string{"norm2", fmtFloat(n2)})
	}
	tui.Table(os.Stdout, []string{"property", "value"}, rows)

	if matrix.ValidateSquare(m) == nil {
		inv, err := m.Inv()
		if err != nil {
			log.Warnf("no inverse: %v", err)
			return nil
		}
		fmt.Println()
		show("A⁻¹", inv)
	}

	return nil
}

type quadraticSolver func(a, x0 *matrix.MatrixX[float64], opts ...optim.Option) (optim.Result[float64], error)

func runQuadratic(name, aCSV, x0CSV string, solve quadraticSolver, extra ...optim.Option) error {
	a, err := squareFrom(aCSV)
	if err != nil {
		return err
	}
	x0, err := vectorFrom(x0CSV)
	if err != nil {
		return err
	}
	show("A", a)
	show("x0", x0)

	log.Debugf("running %s on a %d×%d form ...", name, a.Rows(), a.Cols())
	res, err := solve(a, x0, solverOptions(extra...)...)
	printResult(res)

	return err
}

func runADMM() error {
	var a *matrix.MatrixX[float64]
	var err error
	if *admmRows > 0 {
		a, err = matrixFrom(*admmA, *admmRows, 0)
	} else {
		a, err = squareFrom(*admmA)
	}
	if err != nil {
		return err
	}
	b, err := vectorFrom(*admmB)
	if err != nil {
		return err
	}
	x0, err := vectorFrom(*admmX0)
	if err != nil {
		return err
	}
	show("A", a)
	show("b", b)

	res, err := optim.ADMM(a, b, x0, solverOptions(
		optim.WithLambda(*admmLambda),
		optim.WithTauInv(*admmTauInv),
	)...)
	printResult(res)

	return err
}

func printResult(res optim.Result[float64]) {
	if res.X == nil {
		return
	}
	status := tui.Green("converged")
	if !res.Converged {
		status = tui.Red("not converged")
	}
	tui.Table(os.Stdout, []string{"iterations", "f(x)", "status"}, [][]string{
		{strconv.Itoa(res.Iterations), fmtFloat(res.F), status},
	})
	fmt.Println()
	show("x", res.X)
}
